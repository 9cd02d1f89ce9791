package tui

import "github.com/mattn/go-runewidth"

// Fixed row overhead reserved before distributing column widths:
// selection marker ">> ", three " | " separators, one leading space.
const (
	markerWidth    = 3
	separatorWidth = 9
	leadingWidth   = 1
	rowOverhead    = markerWidth + separatorWidth + leadingWidth
)

// Column minimums used when the terminal is wide enough to honor them.
const (
	minCompanyWidth = 10
	minRoleWidth    = 10
	minLinkWidth    = 14
	minStatusWidth  = 10
)

// columnWidths maps the total available row width to the four column
// widths (company, role, link, status).
//
// With room to spare, company/role/link each take their minimum plus 30%
// of the surplus and status absorbs the remainder; if that would push
// status under its minimum, only link shrinks to compensate. Below the
// combined minimum the full content width is split 3/3/4/2 with a floor
// of 3 per column, shaving any overflow from link alone.
func columnWidths(totalWidth int) (company, role, link, status int) {
	contentWidth := totalWidth - rowOverhead
	if contentWidth <= 0 {
		return 0, 0, 0, 0
	}

	const minTotal = minCompanyWidth + minRoleWidth + minLinkWidth + minStatusWidth

	if contentWidth < minTotal {
		const weightSum = 3 + 3 + 4 + 2
		company = contentWidth * 3 / weightSum
		role = contentWidth * 3 / weightSum
		link = contentWidth * 4 / weightSum
		status = contentWidth - company - role - link
		if status < 0 {
			status = 0
		}

		company = max(company, 3)
		role = max(role, 3)
		link = max(link, 3)
		status = max(status, 3)

		if total := company + role + link + status; total > contentWidth {
			overflow := total - contentWidth
			reduce := min(overflow, link-3)
			link -= reduce
		}
		return company, role, link, status
	}

	extra := contentWidth - minTotal
	company = minCompanyWidth + extra*3/10
	role = minRoleWidth + extra*3/10
	link = minLinkWidth + extra*3/10
	status = contentWidth - company - role - link

	if status < minStatusWidth {
		deficit := minStatusWidth - status
		take := min(deficit, link-minLinkWidth)
		link -= take
		status = contentWidth - company - role - link
	}

	return company, role, link, status
}

// truncate fits value into width terminal cells. Wide columns get a
// trailing ellipsis marker; columns of 3 cells or fewer are hard-cut.
func truncate(value string, width int) string {
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// padCell left-aligns value in exactly width cells.
func padCell(value string, width int) string {
	return runewidth.FillRight(truncate(value, width), width)
}
