package sites

import (
	"sort"
	"strings"

	"github.com/goliatone/go-sitesfield/pkg/selection"
)

// Search filters list by a case-insensitive match on name or handle. Prefix
// matches rank first; ties keep registry order.
func Search(list []Site, query string, limit int, opts Options) []Site {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchAll {
			if len(list) <= limit {
				return append([]Site{}, list...)
			}
			return append([]Site{}, list[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedSite, 0, len(list))
	for _, site := range list {
		name := strings.ToLower(site.Name)
		handle := strings.ToLower(site.Handle)
		if !strings.Contains(name, q) && !strings.Contains(handle, q) {
			continue
		}
		matches = append(matches, matchedSite{
			site:     site,
			isPrefix: strings.HasPrefix(name, q) || (handle != "" && strings.HasPrefix(handle, q)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Site, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.site)
	}
	return out
}

// SearchOptions runs Search and maps the results onto selection options.
func SearchOptions(list []Site, query string, limit int, opts Options) []selection.Option {
	results := Search(list, query, limit, opts)
	if len(results) == 0 {
		return nil
	}
	return ToOptions(results)
}

type matchedSite struct {
	site     Site
	isPrefix bool
}
