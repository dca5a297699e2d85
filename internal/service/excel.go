package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"workforce/backend/internal/repository/postgres/team"
)

// BuildAttendanceReport writes the attendance rollup into an .xlsx file, one
// row per member grouped under its lead.
func BuildAttendanceReport(teams []team.AttendanceTeam, fileName string) error {
	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Lead", "Member", "Email", "Days Present", "Days Absent", "Work Minutes", "Last Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, t := range teams {
		for _, m := range t.Members {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), t.LeadUsername)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), m.Username)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), m.Email)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), m.DaysPresent)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), m.DaysAbsent)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), m.TotalWorkMinutes)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), m.LastStatus)
			rowNum++
		}
	}

	if err := f.SaveAs(fileName); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
