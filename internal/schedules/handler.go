package schedules

import (
	"strconv"
	"strings"
	"time"

	"waste-backend/internal/calendar"
	"waste-backend/internal/database"
	"waste-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ScheduleRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// GET /api/schedules
func ListSchedulesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []models.Schedule
		if err := database.DB.Order("date ASC, id ASC").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "일정을 불러올 수 없습니다")
		}
		return c.JSON(items)
	}
}

// POST /api/schedules
func CreateScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ScheduleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		if strings.TrimSpace(body.Content) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "일정 내용은 필수입니다")
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "날짜 형식은 'YYYY-MM-DD' 이어야 합니다")
		}

		status := body.Status
		if status == "" {
			status = string(models.SchedulePending)
		}

		item := models.Schedule{
			Date:    body.Date,
			Content: body.Content,
			Status:  status,
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "일정을 저장할 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Success", "id": item.ID})
	}
}

// PUT /api/schedules/:id
func UpdateScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.Schedule
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "일정을 찾을 수 없습니다")
		}

		var body ScheduleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}
		if strings.TrimSpace(body.Content) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "일정 내용은 필수입니다")
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "날짜 형식은 'YYYY-MM-DD' 이어야 합니다")
		}

		item.Date = body.Date
		item.Content = body.Content
		if body.Status != "" {
			item.Status = body.Status
		}

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "일정을 수정할 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Updated"})
	}
}

// DELETE /api/schedules/:id
func DeleteScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		res := database.DB.Delete(&models.Schedule{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "일정을 삭제할 수 없습니다")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "일정을 찾을 수 없습니다")
		}

		return c.JSON(fiber.Map{"message": "Deleted"})
	}
}

type CalendarResponse struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Cells []calendar.DayCell `json:"cells"`
}

// GET /api/schedules/calendar?year=2024&month=2
// 해당 월의 6주(42칸) 그리드를 일정·공휴일 표시와 함께 돌려준다.
func CalendarHandler() fiber.Handler {
	holidays := calendar.KoreanHolidays{}

	return func(c *fiber.Ctx) error {
		now := time.Now()

		year, err := strconv.Atoi(c.Query("year", strconv.Itoa(now.Year())))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "year 값이 올바르지 않습니다")
		}
		month, err := strconv.Atoi(c.Query("month", strconv.Itoa(int(now.Month()))))
		if err != nil || month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month 값이 올바르지 않습니다")
		}

		var items []models.Schedule
		if err := database.DB.Order("date ASC, id ASC").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "일정을 불러올 수 없습니다")
		}

		return c.JSON(CalendarResponse{
			Year:  year,
			Month: month,
			Cells: calendar.BuildMonthGrid(year, month, items, holidays, now),
		})
	}
}
