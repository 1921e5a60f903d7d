// Package export hands the output tables to other consumers: a relational
// database through gorm and an XLSX workbook through excelize.
package export
