package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-digital-twin/internal/adapters/providers/simulated"
	"pet-digital-twin/internal/adapters/storage/memory"
	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/metrics"
	"pet-digital-twin/internal/router"
	"pet-digital-twin/internal/seed"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	list, err := seed.Default()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo, err := memory.NewPetRepo(list)
	if err != nil {
		t.Fatalf("repo: %v", err)
	}
	m := metrics.New()
	petsSvc, err := pets.NewService(context.Background(), repo, memory.NewSessionStore(), pets.WithMetrics(m))
	if err != nil {
		t.Fatalf("pets service: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Pets:     petsSvc,
		Linker:   simulated.NewLinker(0),
		Checkout: simulated.NewCheckout(0),
		Metrics:  m,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_ActivePetWellnessAndAlerts(t *testing.T) {
	ts := newServer(t)

	// 1) Roger es la mascota activa por defecto
	{
		var out []struct {
			ID     string `json:"id"`
			Active bool   `json:"active"`
		}
		st, body := doReq(t, ts.URL, "GET", "/pets", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, body)
		}
		decode(t, body, &out)
		if len(out) != 2 || out[0].ID != "roger" || !out[0].Active || out[1].Active {
			t.Fatalf("unexpected pets: %+v", out)
		}
	}

	// 2) Score: 3.8kg no supera 3.85 (10% sobre 3.5); solo descuenta riesgo Medium
	{
		var rep struct {
			BaseScore int `json:"base_score"`
			Score     int `json:"score"`
			Factors   struct {
				WeightDeltaKg float64 `json:"weight_delta_kg"`
			} `json:"factors"`
		}
		st, body := doReq(t, ts.URL, "GET", "/pets/active/wellness", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 wellness, got %d body=%s", st, body)
		}
		decode(t, body, &rep)
		if rep.BaseScore != 85 || rep.Score != 87 || rep.Factors.WeightDeltaKg != 0.3 {
			t.Fatalf("unexpected report: %+v", rep)
		}

		st, _ = doReq(t, ts.URL, "GET", "/pets/active/wellness?period=Year", "", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid period, got %d", st)
		}
	}

	// 3) Descartar una alerta solo afecta a esa vista
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/active/alerts/2/dismiss", "tab-1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dismiss, got %d body=%s", st, body)
		}
		if n := alertCount(t, body); n != 2 {
			t.Fatalf("expected 2 alerts after dismiss, got %d", n)
		}

		st, _ = doReq(t, ts.URL, "POST", "/pets/active/alerts/99/dismiss", "tab-1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dismiss unknown alert, got %d", st)
		}

		_, body = doReq(t, ts.URL, "GET", "/pets/active/alerts", "tab-2", nil)
		if n := alertCount(t, body); n != 3 {
			t.Fatalf("expected other view untouched, got %d", n)
		}
	}

	// 4) Cambiar a Holly; un id desconocido no cambia nada
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/active", "", map[string]any{"pet_id": "holly"})
		if st != http.StatusOK || activeID(t, body) != "holly" {
			t.Fatalf("expected switch to holly, got %d body=%s", st, body)
		}

		st, body = doReq(t, ts.URL, "PUT", "/pets/active", "", map[string]any{"pet_id": "ghost"})
		if st != http.StatusOK || activeID(t, body) != "holly" {
			t.Fatalf("expected stale switch ignored, got %d body=%s", st, body)
		}
	}

	// 5) Volver a Roger reinicia los descartes de la vista
	{
		_, body := doReq(t, ts.URL, "GET", "/pets/active/alerts", "tab-1", nil)
		if n := alertCount(t, body); n != 3 {
			t.Fatalf("expected holly's 3 alerts, got %d", n)
		}
		doReq(t, ts.URL, "PUT", "/pets/active", "", map[string]any{"pet_id": "roger"})
		_, body = doReq(t, ts.URL, "GET", "/pets/active/alerts", "tab-1", nil)
		if n := alertCount(t, body); n != 3 {
			t.Fatalf("expected roger's alerts restored, got %d", n)
		}
	}
}

func TestHTTP_RoundTripSwitchResetsDismissals(t *testing.T) {
	ts := newServer(t)

	_, body := doReq(t, ts.URL, "GET", "/pets/active/alerts", "tab-1", nil)
	if n := alertCount(t, body); n != 3 {
		t.Fatalf("expected 3 alerts, got %d", n)
	}
	_, body = doReq(t, ts.URL, "POST", "/pets/active/alerts/1/dismiss", "tab-1", nil)
	if n := alertCount(t, body); n != 2 {
		t.Fatalf("expected 2 alerts after dismiss, got %d", n)
	}

	// roger -> holly -> roger sin leer alertas entre medio
	for _, id := range []string{"holly", "roger"} {
		st, body := doReq(t, ts.URL, "PUT", "/pets/active", "", map[string]any{"pet_id": id})
		if st != http.StatusOK || activeID(t, body) != id {
			t.Fatalf("expected switch to %s, got %d body=%s", id, st, body)
		}
	}

	_, body = doReq(t, ts.URL, "GET", "/pets/active/alerts", "tab-1", nil)
	if n := alertCount(t, body); n != 3 {
		t.Fatalf("expected dismissals reset after round trip, got %d", n)
	}
}

func TestHTTP_HistoryImport(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/pets/active/history/import", "", map[string]any{"provider": "vca"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 import, got %d body=%s", st, body)
	}
	var res struct {
		PetID    string `json:"pet_id"`
		Appended int    `json:"appended"`
	}
	decode(t, body, &res)
	if res.PetID != "roger" || res.Appended != 1 {
		t.Fatalf("unexpected import result: %+v", res)
	}

	var hist struct {
		Records []pets.MedicalRecord `json:"records"`
	}
	_, body = doReq(t, ts.URL, "GET", "/pets/active/history", "", nil)
	decode(t, body, &hist)
	if len(hist.Records) != 7 || hist.Records[0].Source != "VCA Emergency" {
		t.Fatalf("unexpected history head: %+v", hist.Records[:1])
	}

	st, _ = doReq(t, ts.URL, "POST", "/pets/active/history/import", "", map[string]any{"provider": "nope"})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown provider, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/pets/active/history/import", "", map[string]any{})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 missing provider, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/pets/active/history", "", map[string]any{
		"records": []map[string]string{{"date": "2025-01-01", "type": "Lab Results", "note": "ok", "source": "Antech"}},
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 append, got %d body=%s", st, body)
	}
	decode(t, body, &hist)
	if len(hist.Records) != 8 || hist.Records[0].Type != "Lab Results" {
		t.Fatalf("unexpected history after append: %d records", len(hist.Records))
	}
}

type cartView struct {
	State        string `json:"state"`
	Count        int    `json:"count"`
	Total        string `json:"total"`
	TotalDisplay string `json:"total_display"`
	Items        []struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		Quantity int `json:"quantity"`
	} `json:"items"`
}

func TestHTTP_CartFlow(t *testing.T) {
	ts := newServer(t)

	doReq(t, ts.URL, "POST", "/cart/items", "", map[string]any{"product_id": "p1"})
	doReq(t, ts.URL, "POST", "/cart/items", "", map[string]any{"product_id": "p1"})

	var c cartView
	st, body := doReq(t, ts.URL, "PATCH", "/cart/items/p1", "", map[string]any{"delta": -1})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch, got %d body=%s", st, body)
	}
	decode(t, body, &c)
	if len(c.Items) != 1 || c.Items[0].Quantity != 1 || c.Total != "89.99" {
		t.Fatalf("unexpected cart: %+v", c)
	}

	_, body = doReq(t, ts.URL, "PATCH", "/cart/items/p1", "", map[string]any{"delta": -1})
	decode(t, body, &c)
	if c.Count != 0 || c.Total != "0" || c.State != "Empty" || c.TotalDisplay != "0.00" {
		t.Fatalf("expected empty cart, got %+v", c)
	}

	st, _ = doReq(t, ts.URL, "PATCH", "/cart/items/p9", "", map[string]any{"delta": 3})
	if st != http.StatusOK {
		t.Fatalf("expected 200 for unknown cart product, got %d", st)
	}
	st, _ = doReq(t, ts.URL, "POST", "/cart/items", "", map[string]any{"product_id": "p9"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown catalog product, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/cart/checkout", "", nil)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 checkout empty cart, got %d", st)
	}

	// Diagnóstico de caparazón de Roger agrega la lámpara UVB
	st, body = doReq(t, ts.URL, "POST", "/pets/active/recommendations/dental-check/cart", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 recommendation, got %d body=%s", st, body)
	}
	_, body = doReq(t, ts.URL, "GET", "/cart", "", nil)
	decode(t, body, &c)
	if len(c.Items) != 1 || c.Items[0].Product.ID != "p4" {
		t.Fatalf("expected p4 in cart, got %+v", c)
	}

	st, body = doReq(t, ts.URL, "POST", "/cart/checkout", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 checkout, got %d body=%s", st, body)
	}
	var out struct {
		Receipt struct {
			OrderID string `json:"order_id"`
		} `json:"receipt"`
		Cart cartView `json:"cart"`
	}
	decode(t, body, &out)
	if out.Receipt.OrderID == "" || out.Cart.Count != 0 {
		t.Fatalf("unexpected checkout: %+v", out)
	}
}

func TestHTTP_CatalogRecommendedFirst(t *testing.T) {
	ts := newServer(t)

	var cat struct {
		SpeciesGroup string `json:"species_group"`
		Products     []struct {
			ID          string `json:"id"`
			Recommended bool   `json:"recommended"`
		} `json:"products"`
	}
	st, body := doReq(t, ts.URL, "GET", "/catalog", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 catalog, got %d body=%s", st, body)
	}
	decode(t, body, &cat)
	if cat.SpeciesGroup != "Turtle" || len(cat.Products) != 5 || cat.Products[0].ID != "p2" || !cat.Products[0].Recommended {
		t.Fatalf("unexpected catalog: %+v", cat)
	}

	st, _ = doReq(t, ts.URL, "GET", "/catalog?category=Toys", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown category, got %d", st)
	}
}

func TestHTTP_OpsEndpoints(t *testing.T) {
	ts := newServer(t)

	doReq(t, ts.URL, "PUT", "/pets/active", "", map[string]any{"pet_id": "holly"})

	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "twin_pet_switches_total") {
		t.Fatalf("expected metrics, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/pets/active") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func doReq(t *testing.T, baseURL, method, path, viewSession string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if viewSession != "" {
		req.Header.Set("X-View-Session", viewSession)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func alertCount(t *testing.T, body []byte) int {
	t.Helper()
	var out struct {
		Alerts []json.RawMessage `json:"alerts"`
	}
	decode(t, body, &out)
	return len(out.Alerts)
}

func activeID(t *testing.T, body []byte) string {
	t.Helper()
	var p struct {
		ID string `json:"id"`
	}
	decode(t, body, &p)
	return p.ID
}
