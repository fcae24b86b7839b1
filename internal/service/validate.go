package service

import (
	"fmt"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// ValidationReport summarizes a consistency scan of the link store.
type ValidationReport struct {
	TotalLinks int      `json:"totalLinks"`
	Issues     int      `json:"issues"`
	Messages   []string `json:"messages"`
}

// OK reports whether the scan found no issues.
func (r ValidationReport) OK() bool {
	return r.Issues == 0
}

// ValidateStore scans every stored link for structural problems: duplicate
// IDs or short codes, blank required fields, unknown statuses, negative or
// inconsistent counters, and statuses that disagree with the TTL/quota
// state. It never mutates the store.
func (s *ShortLinks) ValidateStore() ValidationReport {
	links := s.repo.ListAll()
	report := ValidationReport{TotalLinks: len(links)}
	flag := func(format string, args ...any) {
		report.Issues++
		report.Messages = append(report.Messages, fmt.Sprintf(format, args...))
	}

	seenIDs := make(map[string]bool, len(links))
	seenCodes := make(map[string]bool, len(links))
	now := s.now()

	for _, link := range links {
		where := link.ShortCode
		if where == "" {
			where = link.ID
		}

		if link.ID == "" {
			flag("%s: missing id", where)
		} else if seenIDs[link.ID] {
			flag("%s: duplicate id %s", where, link.ID)
		} else {
			seenIDs[link.ID] = true
		}

		if link.ShortCode == "" {
			flag("%s: missing short code", where)
		} else if seenCodes[link.ShortCode] {
			flag("%s: duplicate short code", where)
		} else {
			seenCodes[link.ShortCode] = true
		}

		if link.OwnerUUID == "" {
			flag("%s: missing owner", where)
		}
		if link.LongURL == "" {
			flag("%s: missing long URL", where)
		}
		if !types.KnownStatus(link.Status) {
			flag("%s: unknown status %q", where, link.Status)
		}
		if link.ClickCount < 0 {
			flag("%s: negative click count %d", where, link.ClickCount)
		}
		if link.ClickLimit != nil && *link.ClickLimit <= 0 {
			flag("%s: non-positive click limit %d", where, *link.ClickLimit)
		}
		if link.ClickLimit != nil && link.ClickCount > *link.ClickLimit {
			flag("%s: click count %d exceeds limit %d", where, link.ClickCount, *link.ClickLimit)
		}
		if link.Status == types.StatusActive && link.Expired(now) {
			flag("%s: marked ACTIVE but expired at %s", where, link.ExpiresAt)
		}
		if link.Status == types.StatusActive && link.QuotaReached() {
			flag("%s: marked ACTIVE but click limit is exhausted", where)
		}
	}
	return report
}
