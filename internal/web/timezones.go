package web

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"todoapp/internal/dto"
)

// zoneSources mirrors the lookup order of the time package.
var zoneSources = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// listTimeZones enumerates installed IANA zones with their current UTC
// offset, sorted by id, for the registration form.
func listTimeZones(now time.Time) []dto.TimeZone {
	names := zoneNames()
	sort.Strings(names)

	out := make([]dto.TimeZone, 0, len(names))
	for _, name := range names {
		loc, err := time.LoadLocation(name)
		if err != nil {
			continue
		}
		_, offset := now.In(loc).Zone()
		out = append(out, dto.TimeZone{
			ID:          name,
			DisplayName: fmt.Sprintf("%s : (UTC %s)", name, formatOffset(offset)),
		})
	}
	return out
}

func zoneNames() []string {
	for _, dir := range zoneSources {
		if names := readZoneDir(dir, ""); len(names) > 0 {
			return names
		}
	}
	// No zoneinfo on the host; offer at least UTC.
	return []string{"UTC"}
}

// readZoneDir walks a zoneinfo tree. Zone files start with an uppercase
// letter; everything else (posixrules, leap-seconds.list, ...) is skipped.
func readZoneDir(dir, prefix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if name[0] < 'A' || name[0] > 'Z' || strings.Contains(name, ".") {
			continue
		}
		full := prefix + name
		if entry.IsDir() {
			names = append(names, readZoneDir(filepath.Join(dir, name), full+"/")...)
			continue
		}
		names = append(names, full)
	}
	return names
}

func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, seconds%3600/60)
}
