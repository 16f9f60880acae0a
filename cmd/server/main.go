package main

import (
	"log"
	"strings"

	"waste-backend/internal/auth"
	"waste-backend/internal/config"
	"waste-backend/internal/database"
	"waste-backend/internal/excel"
	"waste-backend/internal/liquidwaste"
	"waste-backend/internal/models"
	"waste-backend/internal/records"
	"waste-backend/internal/schedules"
	"waste-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[WARN] .env 파일이 없습니다. 시스템 환경 변수를 사용합니다.")
	}

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // 엑셀 업로드 허용 크기
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "예상치 못한 서버 오류가 발생했습니다",
			})
		},
	})

	// CORS origins를 쉼표 구분 문자열에서 정리
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// 인증 필요
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// 조회는 viewer도 허용
	protected.Get("/records", records.ListRecordsHandler())
	protected.Get("/master", records.MasterDataHandler())
	protected.Get("/schedules", schedules.ListSchedulesHandler())
	protected.Get("/schedules/calendar", schedules.CalendarHandler())
	protected.Get("/stats", stats.StatsHandler())
	protected.Get("/stats/detail", stats.StatsDetailHandler())
	protected.Get("/export/excel", excel.ExportExcelHandler())
	protected.Post("/export/excel/filtered", excel.ExportFilteredHandler())
	protected.Get("/export/csv", excel.ExportCSVHandler())
	protected.Get("/liquid-waste", liquidwaste.ListHandler())
	protected.Get("/liquid-waste/summary", liquidwaste.SummaryHandler())
	protected.Get("/liquid-waste/summary/csv", liquidwaste.SummaryCSVHandler())

	// 변경은 admin 전용
	adminOnly := protected.Group("")
	adminOnly.Use(auth.RequireRole(models.RoleAdmin))

	adminOnly.Post("/records", records.CreateRecordHandler())
	adminOnly.Put("/records/:id", records.UpdateRecordHandler())
	adminOnly.Patch("/records/:id/status", records.UpdateStatusHandler())
	adminOnly.Delete("/records", records.DeleteAllRecordsHandler())
	adminOnly.Delete("/records/:id", records.DeleteRecordHandler())

	adminOnly.Post("/schedules", schedules.CreateScheduleHandler())
	adminOnly.Put("/schedules/:id", schedules.UpdateScheduleHandler())
	adminOnly.Delete("/schedules/:id", schedules.DeleteScheduleHandler())

	adminOnly.Post("/import/excel", excel.ImportExcelHandler())
	adminOnly.Post("/import/csv", excel.ImportCSVHandler())

	adminOnly.Post("/liquid-waste/upload", liquidwaste.UploadHandler())
	adminOnly.Delete("/liquid-waste/:yearMonth", liquidwaste.DeleteMonthHandler())

	log.Println("서버 실행 중 port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
