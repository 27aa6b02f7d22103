package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"luminaire-configurator/configurator"
	"luminaire-configurator/lumen"
	"luminaire-configurator/models"
	"luminaire-configurator/repository"
)

const serviceCatalogTOML = `
[[products]]
code = "LX200"
name = "Linea 200"

[products.attributes]
watt = "12W, 24W"
ip-rating = "IP65"
beam = "n/a"
cct = "3000K, 4000K"
cri = "80, 90"
finish = "White, Black, RAL"

[[lumen]]
product = "LX200"
watt = "12W"
cct = "3000K"
lumen = "1100"

[[lumen]]
product = "LX200"
watt = "24W"
cct = "3000K"
cri = "90"
lumen = "2000"
`

func newTestService(t *testing.T, table *lumen.Table) *ConfiguratorService {
	t.Helper()
	repo, err := repository.ParseCatalogTOML([]byte(serviceCatalogTOML))
	if err != nil {
		t.Fatal(err)
	}
	return NewConfiguratorService(repo, table, "https://example.com/datasheets/")
}

func TestCreateSession(t *testing.T) {
	svc := newTestService(t, nil)

	view, err := svc.CreateSession(context.Background(), "LX200")
	if err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	if view.ID == "" {
		t.Error("session ID is empty")
	}
	if got, want := view.PlainCode, "LX200.12w.65.30.80.WH"; got != want {
		t.Errorf("PlainCode = %q, want %q", got, want)
	}
	if got, want := view.DatasheetURL, "https://example.com/datasheets/LX200.12w.65.30.80.WH.pdf"; got != want {
		t.Errorf("DatasheetURL = %q, want %q", got, want)
	}
	if view.Lumen == nil || *view.Lumen != "1100" || !view.LumenAvailable {
		t.Errorf("Lumen = %v, want 1100", view.Lumen)
	}
	if len(view.Dropped) != 1 || view.Dropped[0] != models.AttributeBeam {
		t.Errorf("Dropped = %v, want [beam]", view.Dropped)
	}
	if len(view.Tokens) != 6 || view.Tokens[0].Label != configurator.ProductLabel {
		t.Errorf("Tokens = %+v, want product token plus five attributes", view.Tokens)
	}
	if view.RAL.State != "hidden" {
		t.Errorf("RAL.State = %q, want hidden", view.RAL.State)
	}
}

func TestCreateSessionUnknownProduct(t *testing.T) {
	svc := newTestService(t, nil)
	_, err := svc.CreateSession(context.Background(), "NOPE")
	if !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("CreateSession() error = %v, want ErrProductNotFound", err)
	}
}

func TestSessionCommands(t *testing.T) {
	svc := newTestService(t, nil)
	view, err := svc.CreateSession(context.Background(), "LX200")
	if err != nil {
		t.Fatal(err)
	}
	id := view.ID

	view, err = svc.Select(id, "Wattage", "24W")
	if err != nil {
		t.Fatal(err)
	}
	if view.Lumen != nil || view.LumenAvailable {
		t.Errorf("Lumen = %v, want null for 24W/3000K/80", view.Lumen)
	}

	view, err = svc.Select(id, "cri", "90")
	if err != nil {
		t.Fatal(err)
	}
	if view.Lumen == nil || *view.Lumen != "2000" {
		t.Errorf("Lumen = %v, want 2000", view.Lumen)
	}

	if _, err := svc.Select(id, "cri", "70"); !errors.Is(err, configurator.ErrValueNotInCatalog) {
		t.Errorf("Select() error = %v, want ErrValueNotInCatalog", err)
	}
	if _, err := svc.Select(id, "glare", "UGR19"); !errors.Is(err, configurator.ErrUnknownAttribute) {
		t.Errorf("Select() error = %v, want ErrUnknownAttribute", err)
	}

	if _, err := svc.SetRALText(id, "1015"); !errors.Is(err, configurator.ErrRALInactive) {
		t.Errorf("SetRALText() error = %v, want ErrRALInactive", err)
	}
	if _, err := svc.Select(id, "finish", "RAL"); err != nil {
		t.Fatal(err)
	}
	view, err = svc.FocusRAL(id)
	if err != nil {
		t.Fatal(err)
	}
	if view.RAL.Placeholder || view.RAL.State != "editing" {
		t.Errorf("RAL = %+v, want editing without placeholder", view.RAL)
	}
	view, err = svc.SetRALText(id, "1015")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(view.PlainCode, ".RAL1015") {
		t.Errorf("PlainCode = %q, want RAL1015 suffix", view.PlainCode)
	}

	view, err = svc.Reset(id)
	if err != nil {
		t.Fatal(err)
	}
	if view.PlainCode != "LX200.12w.65.30.80.WH" || view.RAL.State != "hidden" {
		t.Errorf("after Reset: PlainCode = %q, RAL = %+v", view.PlainCode, view.RAL)
	}

	if err := svc.DeleteSession(id); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetSession(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession() error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.DeleteSession(id); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("DeleteSession() error = %v, want ErrSessionNotFound", err)
	}
}

func TestLumenTableOverride(t *testing.T) {
	table, err := lumen.NewTable([]models.LumenRow{
		{Product: "LX200", Watt: "12W", CCT: "3000K", CRI: "80", Lumen: "999"},
	})
	if err != nil {
		t.Fatal(err)
	}
	svc := newTestService(t, table)

	view, err := svc.CreateSession(context.Background(), "LX200")
	if err != nil {
		t.Fatal(err)
	}
	if view.Lumen == nil || *view.Lumen != "999" {
		t.Errorf("Lumen = %v, want 999 from the override table", view.Lumen)
	}
}

func TestParseOrderCode(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	parsed, err := svc.ParseOrderCode(ctx, "", "LX200.24w.65.40.90.RAL1015.pdf")
	if err != nil {
		t.Fatalf("ParseOrderCode() error = %v", err)
	}
	if parsed.Product != "LX200" || len(parsed.Parts) != 5 {
		t.Fatalf("ParseOrderCode() = %+v", parsed)
	}
	if last := parsed.Parts[4]; last.Attribute != models.AttributeFinish || last.Value != "RAL1015" {
		t.Errorf("finish part = %+v", last)
	}

	if _, err := svc.ParseOrderCode(ctx, "LX200", "LX200.24w.65"); err == nil {
		t.Error("ParseOrderCode() error = nil for short code")
	}
}

func TestConcurrentSessionCommands(t *testing.T) {
	svc := newTestService(t, nil)
	view, err := svc.CreateSession(context.Background(), "LX200")
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			watt := "12W"
			if i%2 == 0 {
				watt = "24W"
			}
			if _, err := svc.Select(view.ID, "watt", watt); err != nil {
				t.Error(err)
			}
			if _, err := svc.GetSession(view.ID); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}

// fakeClock is a settable time source for session expiry
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	svc := newTestService(t, nil)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.Now
	svc.SetSessionTTL(time.Minute)

	view, err := svc.CreateSession(context.Background(), "LX200")
	if err != nil {
		t.Fatal(err)
	}

	// Each access extends the session
	clock.Advance(50 * time.Second)
	if _, err := svc.GetSession(view.ID); err != nil {
		t.Fatalf("GetSession() before expiry error = %v", err)
	}
	clock.Advance(50 * time.Second)
	if _, err := svc.Select(view.ID, "watt", "24W"); err != nil {
		t.Fatalf("Select() before expiry error = %v", err)
	}

	clock.Advance(61 * time.Second)
	if _, err := svc.GetSession(view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("GetSession() after expiry error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.DeleteSession(view.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session still stored, DeleteSession() error = %v", err)
	}
}

func TestSweepExpiredSessions(t *testing.T) {
	svc := newTestService(t, nil)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.Now
	svc.SetSessionTTL(time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.CreateSession(ctx, "LX200"); err != nil {
			t.Fatal(err)
		}
	}
	clock.Advance(2 * time.Minute)
	fresh, err := svc.CreateSession(ctx, "LX200")
	if err != nil {
		t.Fatal(err)
	}

	// Creating the fresh session already swept the idle ones
	if got := svc.SweepExpiredSessions(); got != 0 {
		t.Errorf("SweepExpiredSessions() = %d, want 0 after create-time sweep", got)
	}
	svc.mu.RLock()
	count := len(svc.sessions)
	svc.mu.RUnlock()
	if count != 1 {
		t.Errorf("stored sessions = %d, want 1", count)
	}
	if _, err := svc.GetSession(fresh.ID); err != nil {
		t.Errorf("GetSession(fresh) error = %v", err)
	}

	clock.Advance(2 * time.Minute)
	if got := svc.SweepExpiredSessions(); got != 1 {
		t.Errorf("SweepExpiredSessions() = %d, want 1", got)
	}
}

func TestSessionTTLDisabled(t *testing.T) {
	svc := newTestService(t, nil)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc.now = clock.Now
	svc.SetSessionTTL(0)

	view, err := svc.CreateSession(context.Background(), "LX200")
	if err != nil {
		t.Fatal(err)
	}
	clock.Advance(24 * time.Hour)
	if _, err := svc.GetSession(view.ID); err != nil {
		t.Errorf("GetSession() with expiry disabled error = %v", err)
	}
}
