package orderControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/awais-ur-rehman/Farhat-Rena-backend/models"
	"github.com/awais-ur-rehman/Farhat-Rena-backend/web"
)

// GET /api/admin/orders/export
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to fetch orders")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"ID", "OrderRef", "AccountName", "AccountEmail", "Status", "Payment",
			"PaymentMethod", "PaymentAmount", "DeliveryCity", "Items", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.AccountName)
			row.AddCell().SetValue(o.AccountEmail)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(strconv.FormatBool(o.Payment))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.PaymentAmount)
			row.AddCell().SetValue(o.DeliveryCity)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			web.Error(c, web.KindUpstreamFailure, "Failed to write Excel file")
			return
		}
	}
}
