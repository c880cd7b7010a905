package analyze

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Engine maps raw repair-order text to a Record. Each field is extracted
// independently through its own pattern cascade; the first candidate that
// passes the field's validity predicate wins and later patterns are ignored.
// Extraction never fails: text that matches nothing yields a zero Record.
type Engine struct {
	now func() time.Time
}

// NewEngine constructs an Engine. now is injectable for deterministic tests;
// nil means time.Now.
func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Extract runs every field cascade over the text. Fields that produce no
// valid candidate are left zero-valued.
func (e *Engine) Extract(text string) Record {
	var rec Record
	rec.CustomerName = extractName(text)
	rec.CustomerPhone = extractPhone(text)
	rec.CustomerEmail = extractEmail(text)
	rec.VIN = extractVIN(text)
	if v, ok := extractVehicle(text, e.now().Year()+1); ok {
		rec.VehicleYear = v.year
		rec.VehicleMake = v.make
		rec.VehicleModel = v.model
	}
	rec.ServiceDate = extractServiceDate(text)
	rec.TotalAmount = extractTotal(text)
	rec.PartsCost = extractFirstPositive(partsPattern, text)
	rec.LaborCost = extractFirstPositive(laborPattern, text)
	rec.ServiceWriter = extractWriter(text)
	rec.LicensePlate = extractPlate(text)
	return rec
}

var implausibleNameWords = []string{"TOTAL", "REPAIR", "ORDER", "SERVICE", "VEHICLE"}

func extractName(text string) string {
	for _, re := range namePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.TrimRight(collapseSpaces(m[1]), " ,.")
			if !plausibleName(cand, 6) {
				continue
			}
			return reorderLastFirst(cand)
		}
	}
	return ""
}

func extractWriter(text string) string {
	for _, re := range writerPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.TrimRight(collapseSpaces(m[1]), " ,.")
			if !plausibleName(cand, 3) {
				continue
			}
			return cand
		}
	}
	return ""
}

func plausibleName(cand string, minLen int) bool {
	if len(cand) < minLen || len(cand) >= 50 {
		return false
	}
	upper := strings.ToUpper(cand)
	for _, kw := range implausibleNameWords {
		if strings.Contains(upper, kw) {
			return false
		}
	}
	return true
}

// reorderLastFirst turns "Doe, Jane" into "Jane Doe".
func reorderLastFirst(name string) string {
	i := strings.Index(name, ",")
	if i < 0 {
		return name
	}
	last := strings.TrimSpace(name[:i])
	first := strings.TrimSpace(name[i+1:])
	if last == "" || first == "" {
		return name
	}
	return first + " " + last
}

func extractPhone(text string) string {
	for _, re := range phonePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			digits := keepDigits(m[len(m)-1])
			if len(digits) == 10 {
				return digits
			}
		}
	}
	return ""
}

func extractEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	return ""
}

func extractVIN(text string) string {
	for _, re := range vinPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.ToUpper(m[len(m)-1])
			if vinCharset.MatchString(cand) {
				return cand
			}
		}
	}
	return ""
}

type vehicle struct {
	year  int
	make  string
	model string
}

func extractVehicle(text string, maxYear int) (vehicle, bool) {
	for _, re := range vehiclePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			year, err := strconv.Atoi(m[1])
			if err != nil || year < 1990 || year > maxYear {
				continue
			}
			return vehicle{
				year:  year,
				make:  m[2],
				model: collapseSpaces(m[3]),
			}, true
		}
	}
	return vehicle{}, false
}

func extractPlate(text string) string {
	for _, re := range platePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			cand := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(m[1]), " ", ""))
			if len(cand) >= 2 && len(cand) <= 8 {
				return cand
			}
		}
	}
	return ""
}

// extractServiceDate collects every date-like match across all patterns,
// normalizes each to ISO form, and returns the earliest. Repair orders carry
// several dates (print, due, service); the earliest is empirically the
// service date.
func extractServiceDate(text string) string {
	earliest := ""
	for _, re := range datePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			iso, ok := normalizeDate(m[len(m)-1])
			if !ok {
				continue
			}
			if earliest == "" || iso < earliest {
				earliest = iso
			}
		}
	}
	return earliest
}

// normalizeDate converts MM/DD/YY[YY] or YYYY-MM-DD into YYYY-MM-DD.
// Two-digit years expand into the current century.
func normalizeDate(raw string) (string, bool) {
	if m := slashDate.FindStringSubmatch(raw); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return formatDate(year, month, day)
	}
	if m := isoDate.FindStringSubmatch(raw); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return formatDate(year, month, day)
	}
	return "", false
}

func formatDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	var b strings.Builder
	b.Grow(10)
	b.WriteString(pad(year, 4))
	b.WriteByte('-')
	b.WriteString(pad(month, 2))
	b.WriteByte('-')
	b.WriteString(pad(day, 2))
	return b.String(), true
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// extractTotal takes the maximum labeled total in (0, 100000): sub-totals
// precede the grand total, so the largest in-range labeled amount is assumed
// authoritative.
func extractTotal(text string) float64 {
	best := 0.0
	for _, m := range totalPattern.FindAllStringSubmatch(text, -1) {
		v, ok := parseAmount(m[1])
		if !ok || v <= 0 || v >= 100000 {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best
}

func extractFirstPositive(re *regexp.Regexp, text string) float64 {
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		if v, ok := parseAmount(m[1]); ok && v > 0 {
			return v
		}
	}
	return 0
}

func parseAmount(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
