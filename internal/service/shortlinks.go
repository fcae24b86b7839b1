package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vkuryndin/shortlinkapp/internal/browser"
	"github.com/vkuryndin/shortlinkapp/internal/jsonstore"
	"github.com/vkuryndin/shortlinkapp/internal/repository"
	"github.com/vkuryndin/shortlinkapp/internal/sqlexport"
	"github.com/vkuryndin/shortlinkapp/internal/urlcheck"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// maxCodeAttempts bounds short-code generation so a saturated code space
// fails with ErrCodeSpaceExhausted instead of spinning forever.
const maxCodeAttempts = 100

// ShortLinks is the owner-scoped façade over the link repository. All
// mutating operations act on behalf of the current owner; lifecycle
// transitions are reported through the Notifier.
type ShortLinks struct {
	ownerUUID string
	cfg       types.Config
	dataDir   string
	repo      *repository.Links
	notify    Notifier

	// Test seams.
	openURL func(string) error
	now     func() time.Time
}

// NewShortLinks builds the service for the given owner. A nil notify is
// replaced with a sink that drops everything.
func NewShortLinks(ownerUUID string, cfg types.Config, dataDir string, repo *repository.Links, notify Notifier) *ShortLinks {
	if notify == nil {
		notify = noopNotifier{}
	}
	return &ShortLinks{
		ownerUUID: ownerUUID,
		cfg:       cfg,
		dataDir:   dataDir,
		repo:      repo,
		notify:    notify,
		openURL:   browser.Open,
		now:       time.Now,
	}
}

// Owner returns the UUID the service currently acts for.
func (s *ShortLinks) Owner() string {
	return s.ownerUUID
}

// SwitchOwner rebinds the service to another owner.
func (s *ShortLinks) SwitchOwner(ownerUUID string) {
	s.ownerUUID = ownerUUID
}

// Create validates longURL, derives the click limit, generates a unique
// short code and stores the new link as ACTIVE.
//
// The effective limit is the explicit override if given, else the configured
// default; when both are absent the link is unlimited. A non-positive
// effective limit is rejected.
func (s *ShortLinks) Create(longURL string, limitOverride *int) (*types.Link, error) {
	s.autoCleanup()

	longURL = strings.TrimSpace(longURL)
	if !urlcheck.IsValidHTTPURL(longURL, s.cfg.MaxURLLength) {
		return nil, types.ErrInvalidURL
	}

	var clickLimit *int
	switch {
	case limitOverride != nil:
		clickLimit = limitOverride
	case s.cfg.DefaultClickLimit != nil:
		clickLimit = s.cfg.DefaultClickLimit
	}
	if clickLimit != nil {
		if *clickLimit <= 0 {
			return nil, types.ErrLimitNotPositive
		}
		v := *clickLimit
		clickLimit = &v
	}

	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	now := s.now()
	link := &types.Link{
		ID:         s.repo.NextID(),
		OwnerUUID:  s.ownerUUID,
		LongURL:    longURL,
		ShortCode:  code,
		CreatedAt:  types.NewLocalTime(now),
		ExpiresAt:  types.NewLocalTime(now.Add(time.Duration(s.cfg.DefaultTTLHours) * time.Hour)),
		ClickLimit: clickLimit,
		Status:     types.StatusActive,
	}
	s.repo.Add(link)
	s.notify.Info(link.OwnerUUID, link.ShortCode, "CREATE "+s.ShortURL(code))
	return link, nil
}

// ShortURL renders the user-facing form of a short code.
func (s *ShortLinks) ShortURL(code string) string {
	return s.cfg.BaseURL + code
}

// normalizeCode accepts either a bare code or the full short URL.
func (s *ShortLinks) normalizeCode(raw string) string {
	raw = strings.TrimSpace(raw)
	return strings.TrimPrefix(raw, s.cfg.BaseURL)
}

func (s *ShortLinks) generateUniqueCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := randomBase62(s.cfg.ShortCodeLength)
		if err != nil {
			return "", err
		}
		if _, taken := s.repo.FindByShortCode(code); !taken {
			return code, nil
		}
	}
	return "", types.ErrCodeSpaceExhausted
}

func randomBase62(length int) (string, error) {
	max := big.NewInt(int64(len(base62Alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("short code: %w", err)
		}
		buf[i] = base62Alphabet[n.Int64()]
	}
	return string(buf), nil
}

// OpenResult reports a successful open. Launched is false when the browser
// could not be started; the long URL is still in Link for manual use.
type OpenResult struct {
	Link     *types.Link
	Launched bool
}

// Open resolves code, enforces TTL and click quota, counts the click and
// launches the browser. Expiry wins over quota when both are violated.
// Anyone may open a link, not just its owner.
func (s *ShortLinks) Open(rawCode string) (*OpenResult, error) {
	s.autoCleanup()

	code := s.normalizeCode(rawCode)
	link, ok := s.repo.FindByShortCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrLinkNotFound, code)
	}

	if link.Status != types.StatusDeleted && link.Expired(s.now()) {
		link.Status = types.StatusExpired
		s.repo.Update(link)
		s.notify.Expired(link.OwnerUUID, link.ShortCode, "Link expired at "+link.ExpiresAt.String())
		return nil, fmt.Errorf("%w at %s", types.ErrLinkExpired, link.ExpiresAt)
	}
	if link.Status == types.StatusDeleted {
		return nil, fmt.Errorf("%w: %s", types.ErrLinkDeleted, code)
	}
	if link.QuotaReached() {
		link.Status = types.StatusLimitReached
		s.repo.Update(link)
		msg := fmt.Sprintf("Click limit reached (%d/%d)", link.ClickCount, *link.ClickLimit)
		s.notify.LimitReached(link.OwnerUUID, link.ShortCode, msg)
		return nil, fmt.Errorf("%w (%d/%d)", types.ErrLimitReached, link.ClickCount, *link.ClickLimit)
	}

	link.ClickCount++
	at := types.Now()
	link.LastAccessAt = &at
	if link.QuotaReached() {
		link.Status = types.StatusLimitReached
	} else {
		link.Status = types.StatusActive
	}
	s.repo.Update(link)

	limit := "unlimited"
	if link.ClickLimit != nil {
		limit = strconv.Itoa(*link.ClickLimit)
	}
	s.notify.Info(link.OwnerUUID, link.ShortCode, fmt.Sprintf("OPEN %d/%s", link.ClickCount, limit))

	launched := s.openURL(link.LongURL) == nil
	return &OpenResult{Link: link, Launched: launched}, nil
}

// FindByShortCode looks the code up without touching counters or status.
func (s *ShortLinks) FindByShortCode(rawCode string) (*types.Link, bool) {
	return s.repo.FindByShortCode(s.normalizeCode(rawCode))
}

// ListMine returns the current owner's links.
func (s *ShortLinks) ListMine() []*types.Link {
	s.autoCleanup()
	return s.repo.ListByOwner(s.ownerUUID)
}

// Delete removes the current owner's link physically. Non-owners are
// refused with ErrNotOwner.
func (s *ShortLinks) Delete(rawCode string) error {
	code := s.normalizeCode(rawCode)
	link, ok := s.repo.FindByShortCode(code)
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrLinkNotFound, code)
	}
	if link.OwnerUUID != s.ownerUUID {
		return types.ErrNotOwner
	}
	if !s.repo.DeleteByShortCodeForOwner(code, s.ownerUUID) {
		return fmt.Errorf("%w: %s", types.ErrLinkNotFound, code)
	}
	s.notify.Info(s.ownerUUID, code, "DELETE")
	return nil
}

// EditClickLimit changes the click quota of the current owner's link. A nil
// newLimit makes the link unlimited. Lowering the limit below the clicks
// already counted is refused; setting it exactly to the counted clicks
// flips the link to LIMIT_REACHED immediately.
func (s *ShortLinks) EditClickLimit(rawCode string, newLimit *int) (*types.Link, error) {
	if !s.cfg.AllowOwnerEditLimit {
		return nil, types.ErrEditLimitDisabled
	}
	code := s.normalizeCode(rawCode)
	link, ok := s.repo.FindByShortCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrLinkNotFound, code)
	}
	if link.OwnerUUID != s.ownerUUID {
		return nil, types.ErrNotOwner
	}

	if newLimit == nil {
		link.ClickLimit = nil
	} else {
		if *newLimit <= 0 {
			return nil, types.ErrLimitNotPositive
		}
		if *newLimit < link.ClickCount {
			return nil, fmt.Errorf("%w (%d)", types.ErrLimitBelowClicks, link.ClickCount)
		}
		v := *newLimit
		link.ClickLimit = &v
	}
	link.Recompute(s.now())
	s.repo.Update(link)

	val := "unlimited"
	if link.ClickLimit != nil {
		val = strconv.Itoa(*link.ClickLimit)
	}
	s.notify.Info(s.ownerUUID, code, "EDIT_LIMIT "+val)
	return link, nil
}

// CleanupExpired sweeps the whole store for TTL-expired links, notifying
// the affected owners. Returns the number of links acted on.
func (s *ShortLinks) CleanupExpired() int {
	return s.cleanupExpired(false)
}

// CleanupExpiredMine is CleanupExpired restricted to the current owner.
func (s *ShortLinks) CleanupExpiredMine() int {
	return s.cleanupExpired(true)
}

// CleanupLimitReached sweeps the whole store for quota-exhausted links,
// notifying the affected owners. Returns the number of links acted on.
func (s *ShortLinks) CleanupLimitReached() int {
	return s.cleanupLimitReached(false)
}

// CleanupLimitReachedMine is CleanupLimitReached restricted to the current
// owner.
func (s *ShortLinks) CleanupLimitReachedMine() int {
	return s.cleanupLimitReached(true)
}

func (s *ShortLinks) scope(onlyMine bool) []*types.Link {
	if onlyMine {
		return s.repo.ListByOwner(s.ownerUUID)
	}
	return s.repo.ListAll()
}

func (s *ShortLinks) cleanupExpired(onlyMine bool) int {
	now := s.now()
	count := 0
	for _, link := range s.scope(onlyMine) {
		if link.Status == types.StatusDeleted || !link.Expired(now) {
			continue
		}
		if s.cfg.HardDeleteExpired {
			if !s.repo.DeleteByShortCodeForOwner(link.ShortCode, link.OwnerUUID) {
				continue
			}
		} else {
			if link.Status == types.StatusExpired {
				continue
			}
			link.Status = types.StatusExpired
			s.repo.Update(link)
		}
		count++
		s.notify.Expired(link.OwnerUUID, link.ShortCode, "Cleanup: expired at "+link.ExpiresAt.String())
	}
	return count
}

func (s *ShortLinks) cleanupLimitReached(onlyMine bool) int {
	count := 0
	for _, link := range s.scope(onlyMine) {
		if link.Status == types.StatusDeleted || !link.QuotaReached() {
			continue
		}
		if s.cfg.HardDeleteLimitReached {
			if !s.repo.DeleteByShortCodeForOwner(link.ShortCode, link.OwnerUUID) {
				continue
			}
		} else {
			if link.Status == types.StatusLimitReached {
				continue
			}
			link.Status = types.StatusLimitReached
			s.repo.Update(link)
		}
		count++
		msg := fmt.Sprintf("Cleanup: click limit reached (%d/%d)", link.ClickCount, *link.ClickLimit)
		s.notify.LimitReached(link.OwnerUUID, link.ShortCode, msg)
	}
	return count
}

// autoCleanup runs both global sweeps when the configuration asks for
// cleanup on every operation.
func (s *ShortLinks) autoCleanup() {
	if !s.cfg.CleanupOnEachOp {
		return
	}
	s.cleanupExpired(false)
	s.cleanupLimitReached(false)
}

// Stats aggregates link counts by status plus click totals.
type Stats struct {
	Total        int
	Active       int
	Expired      int
	LimitReached int
	Deleted      int
	TotalClicks  int
	TopByClicks  []*types.Link
}

// StatsMine aggregates the current owner's links; topN bounds TopByClicks.
func (s *ShortLinks) StatsMine(topN int) Stats {
	s.autoCleanup()
	return computeStats(s.repo.ListByOwner(s.ownerUUID), topN)
}

// StatsGlobal aggregates every link in the store.
func (s *ShortLinks) StatsGlobal(topN int) Stats {
	s.autoCleanup()
	return computeStats(s.repo.ListAll(), topN)
}

func computeStats(links []*types.Link, topN int) Stats {
	st := Stats{Total: len(links)}
	for _, link := range links {
		st.TotalClicks += link.ClickCount
		switch link.Status {
		case types.StatusActive:
			st.Active++
		case types.StatusExpired:
			st.Expired++
		case types.StatusLimitReached:
			st.LimitReached++
		case types.StatusDeleted:
			st.Deleted++
		}
	}
	sorted := make([]*types.Link, len(links))
	copy(sorted, links)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ClickCount > sorted[j].ClickCount
	})
	if topN < 0 {
		topN = 0
	}
	if topN > len(sorted) {
		topN = len(sorted)
	}
	st.TopByClicks = sorted[:topN]
	return st
}

// ExportMine writes the current owner's links to a timestamped JSON file in
// the data directory and returns its path and the number of links written.
func (s *ShortLinks) ExportMine() (string, int, error) {
	s.autoCleanup()
	mine := s.repo.ListByOwner(s.ownerUUID)
	out := s.exportPath("json")
	if err := jsonstore.WriteAtomic(out, mine); err != nil {
		return "", 0, fmt.Errorf("export: %w", err)
	}
	s.notify.Info(s.ownerUUID, "-", fmt.Sprintf("EXPORT json %d", len(mine)))
	return out, len(mine), nil
}

// ExportMineSQLite writes the current owner's links to a timestamped SQLite
// database in the data directory.
func (s *ShortLinks) ExportMineSQLite() (string, int, error) {
	s.autoCleanup()
	mine := s.repo.ListByOwner(s.ownerUUID)
	out := s.exportPath("db")
	if err := sqlexport.Write(out, mine); err != nil {
		return "", 0, fmt.Errorf("export: %w", err)
	}
	s.notify.Info(s.ownerUUID, "-", fmt.Sprintf("EXPORT sqlite %d", len(mine)))
	return out, len(mine), nil
}

func (s *ShortLinks) exportPath(ext string) string {
	stamp := s.now().Format("20060102_150405")
	name := fmt.Sprintf("export_%s_%s.%s", s.ownerUUID, stamp, ext)
	return filepath.Join(s.dataDir, name)
}
