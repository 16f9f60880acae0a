package records

import (
	"sort"

	"waste-backend/internal/database"
	"waste-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MasterDataResponse struct {
	WasteTypes []string `json:"wasteTypes"`
	Processors []string `json:"processors"`
	Vehicles   []string `json:"vehicles"`
}

// GET /api/master
// 기준 데이터는 별도 테이블 없이 기록에서 추출한 DISTINCT 목록이다.
func MasterDataHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		wasteTypes, err := distinctColumn("waste_type")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기준 데이터를 불러올 수 없습니다")
		}
		processors, err := distinctColumn("processor")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기준 데이터를 불러올 수 없습니다")
		}
		vehicles, err := distinctColumn("vehicle_no")
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기준 데이터를 불러올 수 없습니다")
		}

		return c.JSON(MasterDataResponse{
			WasteTypes: wasteTypes,
			Processors: processors,
			Vehicles:   vehicles,
		})
	}
}

func distinctColumn(column string) ([]string, error) {
	var values []string
	err := database.DB.Model(&models.Record{}).
		Distinct(column).
		Where(column+" IS NOT NULL AND "+column+" != ''").
		Pluck(column, &values).Error
	if err != nil {
		return nil, err
	}
	sort.Strings(values)
	return values, nil
}
