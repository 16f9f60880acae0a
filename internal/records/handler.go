package records

import (
	"errors"
	"strings"

	"waste-backend/internal/database"
	"waste-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecordRequest struct {
	SlipNo    string  `json:"slip_no"`
	Date      string  `json:"date"`
	WasteType string  `json:"waste_type"`
	Amount    float64 `json:"amount"`
	Carrier   string  `json:"carrier"`
	VehicleNo string  `json:"vehicle_no"`
	Processor string  `json:"processor"`
	Note1     string  `json:"note1"`
	Note2     string  `json:"note2"`
	Category  string  `json:"category"`
	Supplier  string  `json:"supplier"`
	Status    string  `json:"status"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// GET /api/records
func ListRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var recs []models.Record
		if err := database.DB.Order("date DESC, id DESC").Find(&recs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 불러올 수 없습니다")
		}
		return c.JSON(recs)
	}
}

// POST /api/records
func CreateRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		if strings.TrimSpace(body.SlipNo) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "전표번호는 필수입니다")
		}
		if body.Amount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "처리량은 0 이상이어야 합니다")
		}

		rec := recordFromRequest(body)
		if err := database.DB.Create(&rec).Error; err != nil {
			if isDuplicate(err) {
				return fiber.NewError(fiber.StatusBadRequest, "이미 존재하는 전표번호입니다. (중복 등록 불가)")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 저장할 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Success", "id": rec.ID})
	}
}

// PUT /api/records/:id
func UpdateRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var rec models.Record
		if err := database.DB.First(&rec, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "기록을 찾을 수 없습니다")
		}

		var body RecordRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}
		if body.Amount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "처리량은 0 이상이어야 합니다")
		}

		updated := recordFromRequest(body)
		updated.ID = rec.ID
		updated.CreatedAt = rec.CreatedAt

		if err := database.DB.Save(&updated).Error; err != nil {
			if isDuplicate(err) {
				return fiber.NewError(fiber.StatusBadRequest, "이미 존재하는 전표번호입니다. (중복 등록 불가)")
			}
			return fiber.NewError(fiber.StatusBadRequest, "기록을 수정할 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Updated"})
	}
}

// PATCH /api/records/:id/status
func UpdateStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body StatusUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		res := database.DB.Model(&models.Record{}).
			Where("id = ?", id).
			Update("status", string(models.NormalizeStatus(body.Status)))
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "상태를 변경할 수 없습니다")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "기록을 찾을 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Updated"})
	}
}

// DELETE /api/records/:id
func DeleteRecordHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Record{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 삭제할 수 없습니다")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "기록을 찾을 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Deleted"})
	}
}

// DELETE /api/records: 전체 삭제 (관리자 전용)
func DeleteAllRecordsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Where("1 = 1").Delete(&models.Record{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "기록을 삭제할 수 없습니다")
		}
		return c.JSON(fiber.Map{"message": "All records deleted"})
	}
}

func recordFromRequest(body RecordRequest) models.Record {
	return models.Record{
		SlipNo:    strings.TrimSpace(body.SlipNo),
		Date:      body.Date,
		WasteType: body.WasteType,
		Amount:    body.Amount,
		Carrier:   body.Carrier,
		VehicleNo: body.VehicleNo,
		Processor: body.Processor,
		Note1:     body.Note1,
		Note2:     body.Note2,
		Category:  body.Category,
		Supplier:  body.Supplier,
		Status:    string(models.NormalizeStatus(body.Status)),
	}
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}

// LoadViews: 전체 레코드를 화면 표시용 형태로 읽어온다.
// 매 호출마다 전체를 새로 읽는 full-replace 캐시 정책: 부분 갱신 없음.
func LoadViews() ([]models.RecordView, error) {
	var recs []models.Record
	if err := database.DB.Order("date DESC, id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	views := make([]models.RecordView, 0, len(recs))
	for _, r := range recs {
		views = append(views, r.ToView())
	}
	return views, nil
}
