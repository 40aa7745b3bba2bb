// Command loadtest drives a running countdown server. Every mutation
// rewrites the whole event document, so write latency grows with the list.
package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 20
	testDuration = 10 * time.Second
	maxEvents    = 300
)

var (
	titles = []string{"Birthday", "Vacation", "Launch", "Wedding", "Exam", "Concert", "Marathon", "Move"}
	colors = []string{"#F4A261", "#E76F51", "#2A9D8F", "#264653", "#E9C46A", "#8AB17D", "#6B5B95", "#FF6F61"}
)

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// listed tracks the server's list length well enough to pick valid indices.
var listed atomic.Int64

func main() {
	fmt.Println("=== Countdown Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Max events: %d\n\n", numWorkers, testDuration, maxEvents)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding (POST /events/add) ---")
	runPhase(testDuration/2, func(rng *rand.Rand) result {
		if listed.Load() >= maxEvents {
			return doList("en")
		}
		return doAdd(rng)
	})

	fmt.Println("\n--- Phase 2: Mixed load (30% writes, 70% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doAdd(rng)
		case r < 0.20:
			return doMove(rng)
		case r < 0.30:
			return doRemove(rng)
		case r < 0.80:
			return doList([]string{"en", "de"}[rng.Intn(2)])
		case r < 0.90:
			return doGet("/events.ics")
		default:
			return doGet("/health")
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					results <- workFn(rng)
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func post(endpoint, path string, body any, want int) (result, []byte) {
	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}, nil
	}
	defer resp.Body.Close()
	payload, _ := io.ReadAll(resp.Body)
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}, payload
}

// track updates the known list length from a list response.
func track(payload []byte) {
	var views []json.RawMessage
	if json.Unmarshal(payload, &views) == nil {
		listed.Store(int64(len(views)))
	}
}

func doAdd(rng *rand.Rand) result {
	body := map[string]any{
		"title":           titles[rng.Intn(len(titles))],
		"date":            time.Now().Add(time.Duration(rng.Intn(365*24)) * time.Hour).Format(time.RFC3339),
		"allDay":          rng.Float64() < 0.5,
		"backgroundColor": colors[rng.Intn(len(colors))],
	}
	r, _ := post("POST /events/add", "/events/add", body, http.StatusCreated)
	if !r.err {
		listed.Add(1)
	}
	return r
}

func doMove(rng *rand.Rand) result {
	n := int(listed.Load())
	if n < 2 {
		return doList("en")
	}
	body := map[string]any{"from": []int{rng.Intn(n)}, "to": rng.Intn(n + 1)}
	r, payload := post("POST /events/move", "/events/move", body, http.StatusOK)
	track(payload)
	return r
}

func doRemove(rng *rand.Rand) result {
	n := int(listed.Load())
	if n < maxEvents/2 {
		return doAdd(rng)
	}
	body := map[string]any{"indices": []int{rng.Intn(n)}}
	r, payload := post("POST /events/remove", "/events/remove", body, http.StatusOK)
	track(payload)
	return r
}

func doList(lang string) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/events?lang=" + lang)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /events", 0, lat, true}
	}
	payload, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	track(payload)
	return result{"GET /events", resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doGet(path string) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{"GET " + path, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET " + path, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
