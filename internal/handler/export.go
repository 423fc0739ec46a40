package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"todolist/internal/middleware"
	"todolist/internal/store"
	"todolist/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler lets a user download their todo list as CSV or XLSX.
type ExportHandler struct {
	Todos *store.TodoStore
}

func NewExportHandler(todos *store.TodoStore) *ExportHandler {
	return &ExportHandler{Todos: todos}
}

// ExportCSV streams the caller's todos as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	todos, err := h.Todos.ListByOwner(sess.UserID)
	if err != nil {
		log.Printf("export csv: %v", err)
		util.Message(c, http.StatusInternalServerError, "Error exporting todos")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Content", "Completed", "Created"})
	for _, t := range todos {
		completed := "no"
		if t.Completed {
			completed = "yes"
		}
		writer.Write([]string{
			t.Content,
			completed,
			t.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
}

// ExportXLSX streams the caller's todos as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		util.Message(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	todos, err := h.Todos.ListByOwner(sess.UserID)
	if err != nil {
		log.Printf("export xlsx: %v", err)
		util.Message(c, http.StatusInternalServerError, "Error exporting todos")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Todos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Content", "Completed", "Created"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}

	for row, t := range todos {
		completed := "no"
		if t.Completed {
			completed = "yes"
		}
		values := []interface{}{
			t.Content,
			completed,
			t.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"todos_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		log.Printf("export xlsx write: %v", err)
	}
}
