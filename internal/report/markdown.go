package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/hitushen/opscut/internal/content"
	"github.com/hitushen/opscut/internal/models"
)

// WriteMarkdown 以 Markdown 格式输出扫描结果。
func WriteMarkdown(w io.Writer, result models.ScanResult, rows []content.ResourceRow) error {
	md := markdown.NewMarkdown(w)

	writeHeader(md, result)
	writeCosts(md, result)
	writeIssues(md, result)
	writeResources(md, rows)
	writeFooter(md)

	return md.Build()
}

func writeHeader(md *markdown.Markdown, result models.ScanResult) {
	md.H1("OpsCut Infrastructure Analysis")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Domain", "`" + result.Domain + "`"},
			{"Servers", Number(result.TotalServers)},
			{"Databases", Number(result.Databases)},
			{"Resources Analyzed", Number(result.ResourceCount())},
			{"Issues Found", Number(result.IssueCount())},
		},
	})
	md.PlainText("")
}

func writeCosts(md *markdown.Markdown, result models.ScanResult) {
	md.H2("Monthly Cost")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Current", "Optimized", "Savings", "Reduction"},
		Rows: [][]string{{
			Money(result.CurrentCost),
			Money(result.OptimizedCost),
			"**" + Money(result.Savings) + "**",
			strconv.Itoa(result.SavingsPercent) + "%",
		}},
	})
	md.PlainText("")
	md.PlainTextf("Annual savings potential: **%s**", Money(result.Savings*12))
	md.PlainText("")
}

func writeIssues(md *markdown.Markdown, result models.ScanResult) {
	md.H2("Critical Issues Found")
	md.PlainText("")

	if len(result.Issues) == 0 {
		md.PlainText("No optimization issues detected.")
		md.PlainText("")
		writeAlert(md, result)
		return
	}

	rows := make([][]string, len(result.Issues))
	for i, issue := range result.Issues {
		rows[i] = []string{issue.Type, strconv.Itoa(issue.Count), SeverityLabel(issue.Severity)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Issue", "Count", "Severity"},
		Rows:   rows,
	})
	md.PlainText("")

	writePieChart(md, result)
	writeAlert(md, result)
}

func writePieChart(md *markdown.Markdown, result models.ScanResult) {
	counts := map[models.Severity]int{}
	for _, issue := range result.Issues {
		counts[issue.Severity] += issue.Count
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issues by Severity"),
		piechart.WithShowData(true),
	)
	for _, sev := range []models.Severity{models.SeverityHigh, models.SeverityMedium, models.SeverityLow} {
		if counts[sev] > 0 {
			chart.LabelAndIntValue(SeverityLabel(sev), uint64(counts[sev]))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func writeAlert(md *markdown.Markdown, result models.ScanResult) {
	switch result.WorstSeverity() {
	case models.SeverityHigh:
		md.Warningf("High severity issues detected. %s could be saved every month.", Money(result.Savings))
	case models.SeverityMedium:
		md.Importantf("Medium severity issues detected. %s could be saved every month.", Money(result.Savings))
	case models.SeverityLow:
		md.Note("Only low severity issues detected.")
	default:
		md.Tip("No significant optimization issues detected.")
	}
	md.PlainText("")
}

func writeResources(md *markdown.Markdown, rows []content.ResourceRow) {
	if len(rows) == 0 {
		return
	}
	md.H2("Resource Optimization")
	md.PlainText("")

	table := make([][]string, len(rows))
	for i, row := range rows {
		table[i] = []string{row.Name, strconv.Itoa(row.Current), strconv.Itoa(row.Optimized), reduction(row)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Resource", "Current", "Optimized", "Reduction"},
		Rows:   table,
	})
	md.PlainText("")
}

func writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by OpsCut*")
}

func reduction(row content.ResourceRow) string {
	if row.Current <= 0 {
		return "-"
	}
	pct := (row.Current - row.Optimized) * 100 / row.Current
	return strconv.Itoa(pct) + "%"
}
