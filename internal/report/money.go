package report

import (
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hitushen/opscut/internal/models"
)

// Money 按美元整数格式化金额，例如 $10,801。
func Money(amount float64) string {
	printer := message.NewPrinter(language.English)
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return printer.Sprintf("-$%d", -rounded)
	}
	return printer.Sprintf("$%d", rounded)
}

// Number 输出带千分位的整数。
func Number(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// SeverityLabel 返回首字母大写的严重级别名称。
func SeverityLabel(s models.Severity) string {
	// Caser 带状态，不能跨协程共享。
	return cases.Title(language.English).String(string(s))
}
