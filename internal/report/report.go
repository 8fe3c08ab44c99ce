package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rcliao/healthpredict/internal/model"
)

// ErrNoResults is returned when there is no published assessment to render.
var ErrNoResults = errors.New("no assessment results found, run an assessment first")

// Data is everything a report shows.
type Data struct {
	Profile     *model.UserProfile `json:"profile"`
	Assessment  *model.Assessment  `json:"assessment"`
	Specialists []model.Specialist `json:"specialists"`
}

// Options control rendering.
type Options struct {
	Color bool
	Now   time.Time
}

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, heading: plain, label: plain, accent: plain, muted: plain}
	}
	r := lipgloss.NewRenderer(w)
	teal := lipgloss.Color("#14b8a6")
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(teal).Padding(0, 1),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e293b")),
		label:   r.NewStyle().Bold(true).Foreground(teal),
		accent:  r.NewStyle().Foreground(lipgloss.Color("#0d9488")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
	}
}

// Render writes a text report of the assessment.
func Render(w io.Writer, d Data, opt Options) error {
	top, ok := d.Assessment.Top()
	if !ok {
		return ErrNoResults
	}
	if opt.Now.IsZero() {
		opt.Now = time.Now()
	}
	st := newStyles(w, opt.Color)
	var b strings.Builder

	b.WriteString(st.title.Render("HealthPredict Assessment Report") + "\n")
	b.WriteString(st.muted.Render(fmt.Sprintf("Report ID: %s  Generated: %s", d.Assessment.ID, opt.Now.Format("2006-01-02 15:04"))) + "\n\n")

	b.WriteString(st.heading.Render("Patient Information") + "\n")
	writePairs(&b, st, patientRows(d.Profile, d.Assessment.Symptoms))

	b.WriteString("\n" + st.heading.Render("Detailed Analysis") + "\n")
	b.WriteString("  " + st.accent.Render(top.Name) + "\n")
	writePairs(&b, st, [][2]string{
		{"Confidence", formatConfidence(top.Confidence)},
		{"Urgency", string(top.Urgency)},
		{"Next step", UrgencyAdvice(top.Urgency)},
	})
	b.WriteString("  " + top.Explanation + "\n")

	if len(top.Recommendations) > 0 {
		b.WriteString("\n" + st.heading.Render("Recommendations") + "\n")
		for _, r := range top.Recommendations {
			b.WriteString("  • " + r + "\n")
		}
	}

	if len(d.Assessment.Results) > 1 {
		b.WriteString("\n" + st.heading.Render("Secondary Differential Matches") + "\n")
		rows := make([][]string, 0, len(d.Assessment.Results)-1)
		for _, r := range d.Assessment.Results[1:] {
			rows = append(rows, []string{r.Name, formatConfidence(r.Confidence), string(r.Urgency)})
		}
		for _, line := range formatTable([]string{"Condition", "Confidence", "Urgency"}, rows, map[int]bool{1: true}) {
			b.WriteString("  " + line + "\n")
		}
	}

	if len(d.Specialists) > 0 {
		b.WriteString("\n" + st.heading.Render("Recommended Specialists") + "\n")
		rows := make([][]string, 0, len(d.Specialists))
		for _, sp := range d.Specialists {
			rows = append(rows, []string{sp.Specialty, sp.Name, sp.Location, sp.Contact, strconv.FormatFloat(sp.Rating, 'f', 1, 64)})
		}
		for _, line := range formatTable([]string{"Specialty", "Doctor", "Location", "Contact", "Rating"}, rows, map[int]bool{4: true}) {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + st.heading.Render("General Advice") + "\n")
	b.WriteString("  " + GeneralAdvice(d.Assessment.Symptoms) + "\n\n")
	b.WriteString(st.muted.Render("DISCLAIMER: "+Disclaimer) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func patientRows(p *model.UserProfile, symptoms []string) [][2]string {
	name, age, gender := "N/A", strconv.Itoa(model.DefaultScoringAge), model.DefaultGender
	var height, weight float64
	if p != nil {
		if p.Name != "" {
			name = p.Name
		}
		if p.Age != 0 {
			age = strconv.Itoa(p.Age)
		}
		if p.Gender != "" {
			gender = p.Gender
		}
		height, weight = p.Height, p.Weight
	}
	bmi := model.BMI(height, weight)
	return [][2]string{
		{"Patient Name", name},
		{"Age / Gender", age + " / " + gender},
		{"BMI Index", fmt.Sprintf("%.1f (%s)", bmi, model.BMICategory(bmi))},
		{"Reported Symptoms", strings.Join(symptoms, ", ")},
	}
}

func writePairs(b *strings.Builder, st styles, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		if w := runewidth.StringWidth(p[0]); w > width {
			width = w
		}
	}
	for _, p := range pairs {
		b.WriteString("  " + st.label.Render(runewidth.FillRight(p[0], width)) + "  " + p[1] + "\n")
	}
}

func formatConfidence(c float64) string {
	return strconv.FormatFloat(c, 'f', 1, 64) + "%"
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if rightAlignCols[i] {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
