package expr

import (
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/go-drift/genui/pkg/dynamic"
)

// printer renders grouped decimal numbers. Decimal formatting never falls
// back to scientific notation, even for magnitudes below 1.
var printer = message.NewPrinter(language.English)

// currencySymbols maps the ISO codes with a dedicated prefix symbol.
// Unknown codes use the code itself as prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// placeholderPattern matches ${<path>} substitutions in formatString
// templates.
var placeholderPattern = regexp.MustCompile(`\$\{([^}]*)\}`)

// formatDecimal renders a thousands-grouped, fixed-decimal string.
// minFrac/maxFrac below zero leave the locale default in place.
func formatDecimal(value float64, minFrac, maxFrac int, grouping bool) string {
	var options []number.Option
	if minFrac >= 0 {
		options = append(options, number.MinFractionDigits(minFrac))
	}
	if maxFrac >= 0 {
		options = append(options, number.MaxFractionDigits(maxFrac))
	}
	if !grouping {
		options = append(options, number.NoSeparator())
	}
	return printer.Sprintf("%v", number.Decimal(value, options...))
}

// formatNumber(value, minimumFractionDigits?, maximumFractionDigits?,
// useGrouping?=true)
func (e *Evaluator) formatNumber(call *dynamic.FunctionCall) (any, bool) {
	value, ok := e.numberArg(call, "value")
	if !ok {
		return nil, false
	}
	minFrac, maxFrac := -1, -1
	if n, ok := e.intArg(call, "minimumFractionDigits"); ok {
		minFrac = n
	}
	if n, ok := e.intArg(call, "maximumFractionDigits"); ok {
		maxFrac = n
	}
	grouping := true
	if b, ok := e.boolArg(call, "useGrouping"); ok {
		grouping = b
	}
	return formatDecimal(value, minFrac, maxFrac, grouping), true
}

// formatCurrency(value, currency="USD")
func (e *Evaluator) formatCurrency(call *dynamic.FunctionCall) (any, bool) {
	value, ok := e.numberArg(call, "value")
	if !ok {
		return nil, false
	}
	code := "USD"
	if s, ok := e.stringArg(call, "currency"); ok && s != "" {
		code = s
	}
	symbol, known := currencySymbols[code]
	if !known {
		symbol = code
	}
	return symbol + formatDecimal(value, 2, 2, true), true
}

// formatDate(value) is an identity pass-through, reserved for future locale
// formatting.
func (e *Evaluator) formatDate(call *dynamic.FunctionCall) (any, bool) {
	return e.stringArg(call, "value")
}

// formatString(template, ...) replaces each ${<path>} with the string value
// at that data store path, or the empty string when absent.
func (e *Evaluator) formatString(call *dynamic.FunctionCall) (any, bool) {
	template, ok := e.stringArg(call, "template")
	if !ok {
		return nil, false
	}
	expanded := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		path := placeholderPattern.FindStringSubmatch(match)[1]
		value, ok := e.read(path)
		if !ok {
			return ""
		}
		s, ok := asString(value)
		if !ok {
			return ""
		}
		return s
	})
	return expanded, true
}

// pluralize(count, zero?, one?, other) selects a plural form. zero and one
// apply only when supplied and the count matches exactly; everything else
// falls through to other.
func (e *Evaluator) pluralize(call *dynamic.FunctionCall) (any, bool) {
	count, ok := e.numberArg(call, "count")
	if !ok {
		return nil, false
	}
	if count == 0 {
		if form, ok := e.stringArg(call, "zero"); ok {
			return form, true
		}
	}
	if count == 1 {
		if form, ok := e.stringArg(call, "one"); ok {
			return form, true
		}
	}
	return e.stringArg(call, "other")
}
