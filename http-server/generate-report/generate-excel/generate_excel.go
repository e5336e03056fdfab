package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"teacher-salary/internal/constants"
	"teacher-salary/internal/salary"
	report "teacher-salary/internal/service/generate-excel"
)

type GenerateExcelHandler interface {
	GenerateExcel(ctx context.Context, params report.ReportParams) ([]byte, error)
}

// GenerateReportExcel streams the salary scale workbook. ?seniority= and
// ?allowance= are whole numbers and default to zero; ?category= limits the
// workbook to one category.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.report.GenerateReportExcel"

		params, err := parseParams(r)
		if err != nil {
			log.Debug("invalid report query", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateExcel(ctx, params)
		if err != nil {
			log.Error("failed to generate excel", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+report.ReportFileName(params))
		if _, err := w.Write(excelBytes); err != nil {
			log.Error("failed to write excel", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}

func parseParams(r *http.Request) (report.ReportParams, error) {
	var params report.ReportParams

	if v := r.URL.Query().Get("category"); v != "" {
		category, err := salary.ParseCategory(v)
		if err != nil {
			return params, err
		}
		params.Category = category
	}

	seniority, err := queryInt(r, "seniority", constants.MaxSeniorityYears)
	if err != nil {
		return params, err
	}
	params.SeniorityYears = seniority

	allowance, err := queryInt(r, "allowance", constants.MaxAllowancePercent)
	if err != nil {
		return params, err
	}
	params.AllowancePercent = allowance

	return params, nil
}

func queryInt(r *http.Request, key string, limit int) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > limit {
		return 0, fmt.Errorf("%s must be a whole number between 0 and %d", key, limit)
	}
	return n, nil
}
