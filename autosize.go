package flexy

import (
	"strconv"
	"strings"

	"github.com/flexydesign/flexy/dom"
)

// AdjustTextSize compensates the minimum font size of the host for the text
// nodes carrying data-text-size="fontVw:widthVw:heightVw:lineHeightVw".
//
// A text whose size at the current viewport is below the minimum is rendered
// at the minimum and scaled down by a transform; its box is enlarged by the
// inverse factor so that it keeps its design footprint. Texts above the
// minimum have those inline properties cleared.
func AdjustTextSize(root *dom.Element, win *dom.Window) {
	if root == nil || win == nil {
		return
	}
	minSize := win.MinimumFontSize
	if minSize <= 0.1 {
		return
	}
	for _, text := range root.QueryAttr(TextSizeAttr) {
		dims, _ := text.Attr(TextSizeAttr)
		parts := strings.Split(dims, ":")
		fontVw, ok := parseNumber(parts[0])
		if !ok {
			continue
		}
		renderPx := fontVw * win.Width() / 100
		if renderPx <= 0 {
			continue
		}
		style := text.Style()
		if renderPx >= minSize {
			for _, p := range []string{"transform", "width", "height", "transform-origin", "line-height"} {
				style.Remove(p)
			}
			continue
		}

		scale := renderPx / minSize
		inv := 1 / scale
		style.Set("transform", "scale("+cssNumber(scale)+")")
		if len(parts) > 1 {
			if w, ok := parseNumber(parts[1]); ok {
				style.Set("width", cssNumber(w*inv)+"vw")
			}
		}
		if len(parts) > 2 {
			if h, ok := parseNumber(parts[2]); ok {
				style.Set("height", cssNumber(h*inv)+"vw")
			}
		}
		origin := cssNumber(inv) + "% 0%"
		if len(parts) > 3 {
			if lh, ok := parseNumber(parts[3]); ok {
				style.Set("line-height", cssNumber(lh*inv)+"vw")
				if lh*inv == inv {
					origin = "0% 0%"
				}
			}
		}
		style.Set("transform-origin", origin)
	}
}

// AdjustInlineSvgSize stretches the inline svg drawings found in
// [flexy-inline-svg] boxes to the size of their box.
func AdjustInlineSvgSize(root *dom.Element) {
	if root == nil {
		return
	}
	for _, box := range root.QueryAttr(InlineSvgAttr) {
		svg, err := box.Query(".//*[local-name()='svg']")
		if err != nil || svg == nil {
			continue
		}
		w, hasW := svgDimension(svg, "width")
		h, hasH := svgDimension(svg, "height")
		switch {
		case hasW && hasH:
			svg.Style().Set("transform", "scale("+cssNumber(box.ClientWidth()/w)+", "+cssNumber(box.ClientHeight()/h)+")")
		case hasW:
			svg.Style().Set("transform", "scaleX("+cssNumber(box.ClientWidth()/w)+")")
		case hasH:
			svg.Style().Set("transform", "scaleY("+cssNumber(box.ClientHeight()/h)+")")
		}
	}
}

func svgDimension(svg *dom.Element, attr string) (float64, bool) {
	v, ok := svg.Attr(attr)
	if !ok {
		return 0, false
	}
	n, ok := parseNumber(strings.TrimSuffix(v, "px"))
	if !ok || n == 0 {
		return 0, false
	}
	return n, true
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
