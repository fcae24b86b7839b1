// Shared helpers for shortlink CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// fail prints a prefixed error and exits. Business refusals are user
// errors; everything else is a system error.
func fail(prefix string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

func isUserError(err error) bool {
	for _, sentinel := range []error{
		types.ErrLinkNotFound,
		types.ErrLinkDeleted,
		types.ErrNotOwner,
		types.ErrLinkExpired,
		types.ErrLimitReached,
		types.ErrEditLimitDisabled,
		types.ErrLimitNotPositive,
		types.ErrLimitBelowClicks,
		types.ErrInvalidURL,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// fmtLimit renders a click limit for human output.
func fmtLimit(limit *int) string {
	if limit == nil {
		return "unlimited"
	}
	return fmt.Sprintf("%d", *limit)
}

// fmtLink renders a one-line human summary of a link.
func fmtLink(link *types.Link) string {
	return fmt.Sprintf("%-10s %-13s clicks %d/%-9s expires %s  %s",
		appLinks.ShortURL(link.ShortCode), link.Status,
		link.ClickCount, fmtLimit(link.ClickLimit),
		link.ExpiresAt, link.LongURL)
}
