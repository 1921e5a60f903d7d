package export

import (
	"fmt"

	"route-atlas/feature/airports"
	"route-atlas/feature/routes"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	AirportsSheet = "Airports"
	RoutesSheet   = "Routes"
)

// WriteWorkbook writes both tables to an XLSX file, one sheet each, with the
// same columns as the CSV outputs.
func WriteWorkbook(path string, table []airports.Airport, rs []routes.Route) error {
	x := excelize.NewFile()
	defer x.Close()

	airportRows := make([][]string, 0, len(table)+1)
	airportRows = append(airportRows, airports.Columns)
	for _, a := range table {
		airportRows = append(airportRows, a.Values())
	}

	routeRows := make([][]string, 0, len(rs)+1)
	routeRows = append(routeRows, routes.Columns)
	for _, r := range rs {
		routeRows = append(routeRows, r.Values())
	}

	if err := addSheet(x, AirportsSheet, airportRows); err != nil {
		return err
	}
	if err := addSheet(x, RoutesSheet, routeRows); err != nil {
		return err
	}
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := x.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func addSheet(x *excelize.File, name string, rows [][]string) error {
	idx, err := x.NewSheet(name)
	if err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", name, err)
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return err
		}
		if err := x.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, r+1, err)
		}
	}
	if name == AirportsSheet {
		x.SetActiveSheet(idx)
	}
	return nil
}
