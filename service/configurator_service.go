package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"luminaire-configurator/configurator"
	"luminaire-configurator/lumen"
	"luminaire-configurator/models"
	"luminaire-configurator/repository"
	"luminaire-configurator/utils"
)

// ErrSessionNotFound is returned for unknown or deleted session IDs
var ErrSessionNotFound = errors.New("session not found")

const (
	// DefaultDatasheetBaseURL is used when no datasheet base URL is configured
	DefaultDatasheetBaseURL = "https://datasheets.example.com/pdf"
	// DefaultSessionTTL is how long an untouched session is kept
	DefaultSessionTTL = 30 * time.Minute
)

// sessionEntry serializes commands on one session; the session itself is not concurrency-safe
type sessionEntry struct {
	mu         sync.Mutex
	id         string
	session    *configurator.Session
	lastAccess atomic.Int64 // unix nanoseconds
}

func (e *sessionEntry) touch(now time.Time) {
	e.lastAccess.Store(now.UnixNano())
}

func (e *sessionEntry) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, e.lastAccess.Load()))
}

// ConfiguratorService manages in-memory configurator sessions.
// Sessions are never persisted, are lost on restart, and expire after sessionTTL without use.
type ConfiguratorService struct {
	repository       repository.CatalogRepositoryInterface
	lumenTable       *lumen.Table // Overrides repository lumen rows when set
	datasheetBaseURL string
	sessionTTL       time.Duration // Zero keeps sessions until deleted
	now              func() time.Time

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// Ensure ConfiguratorService implements ConfiguratorServiceInterface
var _ ConfiguratorServiceInterface = (*ConfiguratorService)(nil)

// NewConfiguratorService creates a new ConfiguratorService.
// lumenTable may be nil, in which case lumen rows come from the repository.
func NewConfiguratorService(repo repository.CatalogRepositoryInterface, lumenTable *lumen.Table, datasheetBaseURL string) *ConfiguratorService {
	if datasheetBaseURL == "" {
		datasheetBaseURL = DefaultDatasheetBaseURL
	}
	return &ConfiguratorService{
		repository:       repo,
		lumenTable:       lumenTable,
		datasheetBaseURL: datasheetBaseURL,
		sessionTTL:       DefaultSessionTTL,
		now:              time.Now,
		sessions:         make(map[string]*sessionEntry),
	}
}

// SetSessionTTL changes how long idle sessions are kept. A zero or negative ttl disables expiry.
func (s *ConfiguratorService) SetSessionTTL(ttl time.Duration) {
	if ttl < 0 {
		ttl = 0
	}
	s.mu.Lock()
	s.sessionTTL = ttl
	s.mu.Unlock()
}

// expired reports whether an entry has been idle longer than the TTL; the caller holds s.mu
func (s *ConfiguratorService) expired(entry *sessionEntry, now time.Time) bool {
	return s.sessionTTL > 0 && entry.idleSince(now) > s.sessionTTL
}

// SweepExpiredSessions drops every idle session and returns how many were removed
func (s *ConfiguratorService) SweepExpiredSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *ConfiguratorService) sweepLocked(now time.Time) int {
	removed := 0
	for id, entry := range s.sessions {
		if s.expired(entry, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("🧹 Expired %d idle configurator sessions", removed)
	}
	return removed
}

// StartSessionSweeper removes idle sessions every interval until ctx is done
func (s *ConfiguratorService) StartSessionSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.SweepExpiredSessions()
			}
		}
	}()
}

// ListProducts returns all products of the catalog
func (s *ConfiguratorService) ListProducts(ctx context.Context) ([]models.ProductSummary, error) {
	products, err := s.repository.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns the filtered catalog of one product
func (s *ConfiguratorService) GetProduct(ctx context.Context, code string) (*models.ProductDetail, error) {
	catalog, err := s.loadCatalog(ctx, code)
	if err != nil {
		return nil, err
	}
	detail := catalog.Detail()
	return &detail, nil
}

// ParseOrderCode splits a plain order code into labeled tokens using the product's
// attribute layout. When product is empty the code's first segment is used.
func (s *ConfiguratorService) ParseOrderCode(ctx context.Context, product string, code string) (*models.ParsedOrderCode, error) {
	if product == "" {
		product = strings.SplitN(strings.TrimSpace(code), ".", 2)[0]
	}

	catalog, err := s.loadCatalog(ctx, product)
	if err != nil {
		return nil, err
	}

	parsed, err := utils.ParsePlainCode(code, catalog.Layout())
	if err != nil {
		return nil, err
	}
	if parsed.Product != catalog.Product {
		return nil, fmt.Errorf("order code %s belongs to product %s, not %s", code, parsed.Product, catalog.Product)
	}
	return parsed, nil
}

// loadCatalog reads and filters the catalog of one product
func (s *ConfiguratorService) loadCatalog(ctx context.Context, code string) (*configurator.Catalog, error) {
	src, err := s.repository.GetProduct(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	catalog := configurator.BuildCatalog(*src)
	if dropped := catalog.Dropped(); len(dropped) > 0 {
		log.Printf("🔍 Product %s: attributes without valid values dropped: %v", code, dropped)
	}
	return catalog, nil
}

// lumenRows returns the ordered lumen rows for a product
func (s *ConfiguratorService) lumenRows(ctx context.Context, product string) ([]models.LumenRow, error) {
	if s.lumenTable != nil {
		return s.lumenTable.ForProduct(product), nil
	}
	rows, err := s.repository.GetLumenRows(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to load lumen rows: %w", err)
	}
	return rows, nil
}

// CreateSession starts a configurator session with every attribute at its default
func (s *ConfiguratorService) CreateSession(ctx context.Context, product string) (*models.SessionView, error) {
	catalog, err := s.loadCatalog(ctx, product)
	if err != nil {
		return nil, err
	}
	rows, err := s.lumenRows(ctx, catalog.Product)
	if err != nil {
		return nil, err
	}

	entry := &sessionEntry{
		id:      uuid.NewString(),
		session: configurator.NewSession(catalog, rows),
	}

	s.mu.Lock()
	now := s.now()
	s.sweepLocked(now)
	entry.touch(now)
	s.sessions[entry.id] = entry
	s.mu.Unlock()

	log.Printf("✓ Created configurator session %s for product %s", entry.id, catalog.Product)
	return s.view(entry), nil
}

// GetSession returns the read-out of a session
func (s *ConfiguratorService) GetSession(id string) (*models.SessionView, error) {
	return s.withSession(id, func(*configurator.Session) error { return nil })
}

// DeleteSession discards a session
func (s *ConfiguratorService) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[id]; !exists {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	log.Printf("🗑️  Deleted configurator session %s", id)
	return nil
}

// Select applies a selection command to a session
func (s *ConfiguratorService) Select(id string, attribute string, value string) (*models.SessionView, error) {
	attr, ok := models.ParseAttributeID(attribute)
	if !ok {
		return nil, fmt.Errorf("select %q: %w", attribute, configurator.ErrUnknownAttribute)
	}
	return s.withSession(id, func(session *configurator.Session) error {
		if err := session.Select(attr, value); err != nil {
			log.Printf("⚠️  Session %s: rejected selection: %v", id, err)
			return err
		}
		return nil
	})
}

// Reset restores a session's defaults
func (s *ConfiguratorService) Reset(id string) (*models.SessionView, error) {
	return s.withSession(id, func(session *configurator.Session) error {
		session.Reset()
		return nil
	})
}

// FocusRAL clears the RAL field placeholder
func (s *ConfiguratorService) FocusRAL(id string) (*models.SessionView, error) {
	return s.withSession(id, func(session *configurator.Session) error {
		return session.FocusRAL()
	})
}

// SetRALText records the RAL field text
func (s *ConfiguratorService) SetRALText(id string, text string) (*models.SessionView, error) {
	return s.withSession(id, func(session *configurator.Session) error {
		return session.SetRALText(text)
	})
}

// withSession runs fn on a session while holding its lock and returns the resulting view
func (s *ConfiguratorService) withSession(id string, fn func(*configurator.Session) error) (*models.SessionView, error) {
	s.mu.RLock()
	now := s.now()
	entry, exists := s.sessions[id]
	expired := exists && s.expired(entry, now)
	s.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if expired && s.expire(id, entry) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	entry.touch(now)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := fn(entry.session); err != nil {
		return nil, err
	}
	return s.view(entry), nil
}

// expire removes an idle entry unless it was touched or replaced meanwhile
func (s *ConfiguratorService) expire(id string, entry *sessionEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return true
	}
	if current != entry || !s.expired(entry, s.now()) {
		return false
	}
	delete(s.sessions, id)
	log.Printf("🧹 Configurator session %s expired", id)
	return true
}

// view builds the read-out of a session; the caller holds the entry lock or owns it exclusively
func (s *ConfiguratorService) view(entry *sessionEntry) *models.SessionView {
	session := entry.session
	catalog := session.Catalog()
	state := session.State()
	code := session.OrderCode()
	plain := code.Plain()

	tokens := make([]models.OrderCodeToken, 0, len(code.Tokens)+1)
	for _, t := range code.All() {
		tokens = append(tokens, models.OrderCodeToken{
			Attribute: t.Attribute,
			Label:     t.Label,
			Value:     t.Value,
			IsDefault: t.IsDefault,
		})
	}

	v := &models.SessionView{
		ID:             entry.id,
		Product:        catalog.Product,
		Name:           catalog.Name,
		Attributes:     catalog.Attributes(),
		Dropped:        catalog.Detail().Dropped,
		Selection:      state.Selected,
		Defaults:       state.Defaults,
		LumenAvailable: state.LumenAvailable,
		DecoratedCode:  code.Decorated(),
		PlainCode:      plain,
		DatasheetURL:   configurator.DatasheetURL(s.datasheetBaseURL, plain),
		Tokens:         tokens,
		RAL: models.RALFieldView{
			State:       state.RAL.State.String(),
			Text:        state.RAL.Text,
			Display:     state.RAL.Display(),
			Placeholder: state.RAL.Placeholder,
		},
	}
	if state.LumenAvailable {
		lm := state.Lumen
		v.Lumen = &lm
	}
	return v
}
