// Package main is a smoke-test client for a running muhurat API server.
// It exercises the public and authenticated endpoints and prints a summary.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ActivitiesResponse struct {
	Activities []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"activities"`
}

type PanchangResponse struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Nakshatra string `json:"nakshatra"`
	Tithi     string `json:"tithi"`
	Yoga      string `json:"yoga"`
	RahuKaal  string `json:"rahu_kaal"`
}

type MuhuratResponse struct {
	Activity string `json:"activity"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Dates    []struct {
		Date              string `json:"date"`
		Tier              string `json:"tier"`
		Nakshatra         string `json:"nakshatra"`
		RecommendedWindow string `json:"recommended_window"`
	} `json:"dates"`
}

type SelectionResponse struct {
	ID         int64  `json:"id"`
	ActivityID string `json:"activity_id"`
	Date       string `json:"date"`
	Tier       string `json:"tier"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Muhurat API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testActivities()
	tr.testPanchang()
	tr.testMuhuratSearch()
	tr.testEdgeCases()
	tr.testSelections()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testActivities() {
	tr.printSection("Activity Catalog")

	var data ActivitiesResponse
	if err := tr.getData("/api/v1/activities", &data); err != nil {
		tr.recordError("Activities", err.Error())
		return
	}

	if len(data.Activities) == 12 {
		tr.recordSuccess("Catalog lists 12 activities")
	} else {
		tr.recordError("Activities", fmt.Sprintf("Expected 12 activities, got %d", len(data.Activities)))
	}
}

func (tr *TestRunner) testPanchang() {
	tr.printSection("Panchang")

	var today PanchangResponse
	if err := tr.getData("/api/v1/panchang/today", &today); err != nil {
		tr.recordError("Panchang today", err.Error())
	} else {
		tr.recordSuccess(fmt.Sprintf("Today (%s): %s / %s", today.Date, today.Nakshatra, today.Tithi))
	}

	var fixed PanchangResponse
	if err := tr.getData("/api/v1/panchang/date/2026-01-03", &fixed); err != nil {
		tr.recordError("Panchang date", err.Error())
		return
	}

	// 2026-01-03 derives Rohini / Tritiya; a mismatch means the tables moved
	if fixed.Nakshatra == "Rohini" && strings.HasPrefix(fixed.Tithi, "Tritiya") {
		tr.recordSuccess("2026-01-03 derives Rohini / Tritiya")
	} else {
		tr.recordError("Panchang date", fmt.Sprintf("2026-01-03 derived %s / %s", fixed.Nakshatra, fixed.Tithi))
	}
}

func (tr *TestRunner) testMuhuratSearch() {
	tr.printSection("Muhurat Search")

	var data MuhuratResponse
	err := tr.getData("/api/v1/muhurat/marriage?start=2026-01-01&end=2026-01-31", &data)
	if err != nil {
		tr.recordError("Marriage Jan 2026", err.Error())
		return
	}

	if len(data.Dates) == 0 {
		tr.recordError("Marriage Jan 2026", "Expected candidates, got none")
		return
	}
	if len(data.Dates) > 10 {
		tr.recordError("Marriage Jan 2026", fmt.Sprintf("Result exceeds cap: %d", len(data.Dates)))
		return
	}

	// Excellent entries must come before good ones
	sawGood := false
	for _, d := range data.Dates {
		if d.Tier == "good" {
			sawGood = true
		}
		if d.Tier == "excellent" && sawGood {
			tr.recordError("Marriage Jan 2026", "Tier ordering violated")
			return
		}
	}

	tr.recordSuccess(fmt.Sprintf("Marriage Jan 2026: %d candidates, first %s (%s)",
		len(data.Dates), data.Dates[0].Date, data.Dates[0].Tier))
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	tr.expectStatus("Unknown activity", "/api/v1/muhurat/not-a-real-activity?start=2026-01-01&end=2026-01-31", 404)
	tr.expectStatus("Inverted range", "/api/v1/muhurat/marriage?start=2026-02-01&end=2026-01-01", 400)
	tr.expectStatus("Missing params", "/api/v1/muhurat/marriage", 400)
	tr.expectStatus("Bad date", "/api/v1/panchang/date/not-a-date", 400)
}

func (tr *TestRunner) testSelections() {
	tr.printSection("Selections")

	body, _ := json.Marshal(map[string]string{
		"activity_id": "marriage",
		"date":        "2026-01-03",
		"notes":       "smoke test",
	})

	req, _ := http.NewRequest("POST", tr.baseURL+"/api/v1/selections", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	httpResp, err := tr.client.Do(req)
	if err != nil {
		tr.recordError("Create selection", err.Error())
		return
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != 200 {
		tr.recordError("Create selection", fmt.Sprintf("HTTP %d", httpResp.StatusCode))
		return
	}

	var resp APIResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		tr.recordError("Create selection", err.Error())
		return
	}

	var sel SelectionResponse
	if err := json.Unmarshal(resp.Data, &sel); err != nil {
		tr.recordError("Create selection", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Created selection %d (%s, tier %q)", sel.ID, sel.Date, sel.Tier))

	// Clean up
	delReq, _ := http.NewRequest("DELETE", fmt.Sprintf("%s/api/v1/selections/%d", tr.baseURL, sel.ID), nil)
	if tr.apiKey != "" {
		delReq.Header.Set("X-API-Key", tr.apiKey)
	}
	delResp, err := tr.client.Do(delReq)
	if err != nil {
		tr.recordError("Delete selection", err.Error())
		return
	}
	defer delResp.Body.Close()

	if delResp.StatusCode == 200 {
		tr.recordSuccess("Deleted selection")
	} else {
		tr.recordError("Delete selection", fmt.Sprintf("HTTP %d", delResp.StatusCode))
	}
}

// =============================================================================
// Helpers
// =============================================================================

// getData performs a GET and unmarshals the envelope's data field into v.
func (tr *TestRunner) getData(path string, v interface{}) error {
	httpResp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != 200 {
		body, _ := io.ReadAll(httpResp.Body)
		return fmt.Errorf("HTTP %d: %s", httpResp.StatusCode, string(body))
	}

	var resp APIResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("API error: %+v", resp.Error)
	}

	return json.Unmarshal(resp.Data, v)
}

func (tr *TestRunner) expectStatus(name, path string, want int) {
	httpResp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}
	defer httpResp.Body.Close()
	io.Copy(io.Discard, httpResp.Body)

	if httpResp.StatusCode == want {
		tr.recordSuccess(fmt.Sprintf("%s returns %d", name, want))
	} else {
		tr.recordError(name, fmt.Sprintf("Expected %d, got %d", want, httpResp.StatusCode))
	}
}

func (tr *TestRunner) printSection(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  PASS %s\n", msg)
}

func (tr *TestRunner) recordError(name, msg string) {
	tr.errorCount++
	tr.errors = append(tr.errors, fmt.Sprintf("%s: %s", name, msg))
	fmt.Printf("  FAIL %s: %s\n", name, msg)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Printf("Passed: %d, Failed: %d\n", tr.successCount, tr.errorCount)
	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, e := range tr.errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	fmt.Println("==============================================")
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the running API")
	apiKey := flag.String("key", "", "API key for the selections endpoints")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	NewTestRunner(*baseURL, *apiKey, *verbose).Run()
}
