package render

import (
	"github.com/mathroadmap/mathroadmap/pkg/catalog"
	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
)

// Style is the fill and border color of a node, as #rrggbb hex strings.
type Style struct {
	Fill   string `json:"fill"`
	Border string `json:"border"`
}

// StyleTable maps each category to its node style.
type StyleTable map[catalog.Category]Style

// Styles returns the roadmap palette: blue for essential subjects, purple for
// recommended ones and yellow for optional ones.
func Styles() StyleTable {
	return StyleTable{
		catalog.Essential:   {Fill: "#dae8fc", Border: "#6c8ebf"},
		catalog.Recommended: {Fill: "#e1d5e7", Border: "#9673a6"},
		catalog.Optional:    {Fill: "#fff2cc", Border: "#d6b656"},
	}
}

// StyleFor returns the style of category c, or an
// [rmerrors.UnknownCategoryError] when the table has no entry for it.
func (t StyleTable) StyleFor(c catalog.Category) (Style, error) {
	s, ok := t[c]
	if !ok {
		return Style{}, &rmerrors.UnknownCategoryError{Category: string(c)}
	}
	return s, nil
}
