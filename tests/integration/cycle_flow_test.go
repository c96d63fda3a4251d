package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestCycleFlow_CreateCloneAndChecklist(t *testing.T) {
	app := setupApp(t)

	// Step 1: Create the first cycle; it becomes active.
	januaryID := app.createCycle(t, "January 2026", "2026-01-01", "2026-01-31")

	rec := app.request("GET", "/api/v1/cycles/active", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	active := parseJSON(t, rec)["cycle"].(map[string]interface{})
	if active["id"].(float64) != januaryID {
		t.Fatalf("expected cycle %v to be active, got %v", januaryID, active["id"])
	}

	// Step 2: Add fixed expenses to the active cycle (no cycle_id given).
	rec = app.request("POST", "/api/v1/fixed-expenses",
		`{"name":"Rent","value":"1500","category":"Housing","payment_method":"debit"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create fixed expense failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/api/v1/fixed-expenses",
		`{"name":"Streaming","value":"40","category":"Leisure","payment_method":"credit"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create fixed expense failed: %d %s", rec.Code, rec.Body.String())
	}

	// Step 3: Create the next cycle. It takes over the active flag and
	// clones the previous cycle's fixed expenses.
	februaryID := app.createCycle(t, "February 2026", "2026-02-01", "2026-02-28")

	rec = app.request("GET", "/api/v1/cycles/active", "")
	active = parseJSON(t, rec)["cycle"].(map[string]interface{})
	if active["id"].(float64) != februaryID {
		t.Fatalf("expected the new cycle to be active, got %v", active["id"])
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/fixed-expenses?cycle_id=%.0f", februaryID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list fixed expenses failed: %d %s", rec.Code, rec.Body.String())
	}
	cloned := parseJSON(t, rec)["fixed_expenses"].([]interface{})
	if len(cloned) != 2 {
		t.Fatalf("expected 2 cloned fixed expenses, got %d", len(cloned))
	}

	// Step 4: A transaction dated inside January still lands, even though
	// February is now active: cycle membership is by date.
	rec = app.request("POST", "/api/v1/transactions",
		`{"date":"2026-01-20","description":"Groceries","value":"230.50","payment_method":"debit"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	// A date no cycle covers is rejected.
	rec = app.request("POST", "/api/v1/transactions",
		`{"date":"2025-06-01","description":"Orphan","value":"10","payment_method":"debit"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an uncovered date, got %d: %s", rec.Code, rec.Body.String())
	}

	// Step 5: January's checklist shows its debit fixed expense and the
	// debit transaction; the credit expense stays off the list.
	rec = app.request("GET", fmt.Sprintf("/api/v1/cycles/%.0f/checklist", januaryID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get checklist failed: %d %s", rec.Code, rec.Body.String())
	}
	checklist := parseJSON(t, rec)
	fixed := checklist["fixed_expenses"].([]interface{})
	if len(fixed) != 1 {
		t.Fatalf("expected 1 debit fixed expense on the checklist, got %d", len(fixed))
	}
	transactions := checklist["transactions"].([]interface{})
	if len(transactions) != 1 {
		t.Fatalf("expected 1 debit transaction on the checklist, got %d", len(transactions))
	}

	// Step 6: Check an item off and read the checklist back.
	item := fixed[0].(map[string]interface{})
	body := fmt.Sprintf(`{"item_type":"fixed","item_id":%.0f,"checked":true}`, item["ref_id"].(float64))
	rec = app.request("PUT", fmt.Sprintf("/api/v1/cycles/%.0f/checklist", januaryID), body)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert checklist entry failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", fmt.Sprintf("/api/v1/cycles/%.0f/checklist", januaryID), "")
	checklist = parseJSON(t, rec)
	fixed = checklist["fixed_expenses"].([]interface{})
	if fixed[0].(map[string]interface{})["checked"] != true {
		t.Error("expected the fixed expense to be checked after the upsert")
	}

	// The flag is cycle-scoped: February's checklist is unaffected.
	rec = app.request("GET", fmt.Sprintf("/api/v1/cycles/%.0f/checklist", februaryID), "")
	checklist = parseJSON(t, rec)
	for _, raw := range checklist["fixed_expenses"].([]interface{}) {
		if raw.(map[string]interface{})["checked"] == true {
			t.Error("expected February's checklist items to stay unchecked")
		}
	}
}

func TestCycleFlow_ActivateOlderCycle(t *testing.T) {
	app := setupApp(t)

	januaryID := app.createCycle(t, "January 2026", "2026-01-01", "2026-01-31")
	app.createCycle(t, "February 2026", "2026-02-01", "2026-02-28")

	rec := app.request("POST", fmt.Sprintf("/api/v1/cycles/%.0f/activate", januaryID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("activate failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/cycles/active", "")
	active := parseJSON(t, rec)["cycle"].(map[string]interface{})
	if active["id"].(float64) != januaryID {
		t.Fatalf("expected January to be active again, got %v", active["id"])
	}
}
