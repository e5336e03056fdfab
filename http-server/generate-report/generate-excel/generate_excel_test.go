package generate_excel

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"teacher-salary/internal/salary"
	report "teacher-salary/internal/service/generate-excel"
)

type MockExcelGenerator struct {
	mock.Mock
}

func (m *MockExcelGenerator) GenerateExcel(ctx context.Context, params report.ReportParams) ([]byte, error) {
	args := m.Called(ctx, params)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func TestGenerateReportExcel_Success(t *testing.T) {
	gen := new(MockExcelGenerator)
	gen.On("GenerateExcel", mock.Anything, report.ReportParams{SeniorityYears: 12, AllowancePercent: 35}).
		Return([]byte("xlsx"), nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report/excel?seniority=12&allowance=35", nil)
	GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Bang_luong_PC35_TN12_plus10.xlsx", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", rr.Body.String())
	gen.AssertExpectations(t)
}

func TestGenerateReportExcel_Category(t *testing.T) {
	gen := new(MockExcelGenerator)
	gen.On("GenerateExcel", mock.Anything, report.ReportParams{Category: salary.CategoryPreschool, AllowancePercent: 35}).
		Return([]byte("xlsx"), nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report/excel?category=preschool&allowance=35", nil)
	GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	gen.AssertExpectations(t)
}

func TestGenerateReportExcel_Defaults(t *testing.T) {
	gen := new(MockExcelGenerator)
	gen.On("GenerateExcel", mock.Anything, report.ReportParams{}).Return([]byte("xlsx"), nil)

	rr := httptest.NewRecorder()
	GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	gen.AssertExpectations(t)
}

func TestGenerateReportExcel_BadQuery(t *testing.T) {
	for _, target := range []string{
		"/api/report/excel?seniority=abc",
		"/api/report/excel?allowance=-5",
		"/api/report/excel?allowance=3.5",
		"/api/report/excel?allowance=9223372036854775807",
		"/api/report/excel?seniority=1048577",
		"/api/report/excel?category=college",
	} {
		gen := new(MockExcelGenerator)

		rr := httptest.NewRecorder()
		GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
		gen.AssertNotCalled(t, "GenerateExcel", mock.Anything, mock.Anything)
	}
}

func TestGenerateReportExcel_Error(t *testing.T) {
	gen := new(MockExcelGenerator)
	gen.On("GenerateExcel", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	GenerateReportExcel(slog.Default(), gen).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/report/excel", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
