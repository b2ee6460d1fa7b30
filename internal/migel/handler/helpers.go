package handler

import (
	"net/http"
	"strconv"

	"migel-service/internal/migel/model"
)

// mappingFromForm lets a caller override the firstbase column layout via
// form fields; everything defaults to the standard export.
func mappingFromForm(r *http.Request) model.ProductMapping {
	m := model.DefaultProductMapping()
	m.IDCol = atoi(r.FormValue("id_col"), m.IDCol)
	m.DescDECol = atoi(r.FormValue("de_col"), m.DescDECol)
	m.DescFRCol = atoi(r.FormValue("fr_col"), m.DescFRCol)
	m.DescITCol = atoi(r.FormValue("it_col"), m.DescITCol)
	m.BrandCol = atoi(r.FormValue("brand_col"), m.BrandCol)
	m.MaxCols = atoi(r.FormValue("max_cols"), m.MaxCols)
	return m
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
