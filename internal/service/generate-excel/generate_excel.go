package generate_excel

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"teacher-salary/internal/constants"
	"teacher-salary/internal/salary"
)

// ReportParams fixes the personal inputs applied to every row of the scale.
// An empty Category writes every category.
type ReportParams struct {
	Category         salary.Category
	SeniorityYears   int
	AllowancePercent int
}

func (p ReportParams) categories() []salary.Category {
	if p.Category == "" {
		return salary.Categories()
	}
	return []salary.Category{p.Category}
}

// ScaleRow is one (rank, step) line of a salary scale.
type ScaleRow struct {
	Rank   salary.Rank
	Step   int
	Result salary.Result
}

type GenerateExcelService struct{}

func NewGenerateService() *GenerateExcelService {
	return &GenerateExcelService{}
}

var sheetNames = map[salary.Category]string{
	salary.CategoryPreschool:        "Mầm non",
	salary.CategoryGeneralEducation: "Phổ thông",
}

var headers = []string{
	"Hạng", "Bậc", "Hệ số", "Lương hệ số", "PC thâm niên", "PC ưu đãi hiện tại",
	"BHXH", "Tổng nhận hiện tại", "PC ưu đãi mới", "Tổng nhận mới", "Tăng thêm",
}

// BuildRows computes the whole scale of one category, ranks in ascending order.
func (g *GenerateExcelService) BuildRows(ctx context.Context, category salary.Category, params ReportParams) ([]ScaleRow, error) {
	var rows []ScaleRow
	for _, rank := range salary.Ranks() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for step, c := range salary.Lookup(category, rank) {
			rows = append(rows, ScaleRow{
				Rank:   rank,
				Step:   step,
				Result: salary.Compare(c, params.SeniorityYears, params.AllowancePercent),
			})
		}
	}
	return rows, nil
}

// GenerateExcel writes one sheet per requested category.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, params ReportParams) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	if params.Category != "" && !params.Category.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown category %q", op, salary.ErrInvalidValue, params.Category)
	}

	categories := params.categories()
	scales := make([][]ScaleRow, len(categories))

	gr, gCtx := errgroup.WithContext(ctx)
	for i, category := range categories {
		i, category := i, category
		gr.Go(func() error {
			rows, err := g.BuildRows(gCtx, category, params)
			if err != nil {
				return fmt.Errorf("rows %s: %w", category, err)
			}
			scales[i] = rows
			return nil
		})
	}

	if err := gr.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: header style: %w", op, err)
	}

	for i, category := range categories {
		sheet := sheetNames[category]
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if err := writeSheet(f, sheet, headerStyle, scales[i]); err != nil {
			return nil, fmt.Errorf("%s: sheet %s: %w", op, sheet, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, rows []ScaleRow) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	lastCol := cellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastCol, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		res := row.Result
		values := []interface{}{
			"Hạng " + string(row.Rank),
			row.Step + 1,
			res.Coefficient.InexactFloat64(),
			units(res.Current.Base),
			units(res.Current.SeniorityAmt),
			units(res.Current.AllowanceAmt),
			units(res.Current.InsuranceAmt),
			units(res.Current.Total),
			units(res.Projected.AllowanceAmt),
			units(res.Projected.Total),
			units(res.Increase),
		}
		if err := f.SetSheetRow(sheet, cellName(1, i+2), &values); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
	}); err != nil {
		return err
	}

	return f.SetColWidth(sheet, "A", "K", 18)
}

// ReportFileName is the download name, stamped with the allowance used.
func ReportFileName(params ReportParams) string {
	return fmt.Sprintf("Bang_luong_PC%d_TN%d_plus%d.xlsx",
		params.AllowancePercent, params.SeniorityYears, constants.ProjectionDelta)
}

// units rounds to whole currency units, half away from zero.
func units(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
