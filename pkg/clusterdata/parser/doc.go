// Package parser reads dataset sheets back out of a workbook.
package parser
