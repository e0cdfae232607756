package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vigilo-ops/vigilo-backend-go/internal/config"
	appHTTP "github.com/vigilo-ops/vigilo-backend-go/internal/handler/http"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/database"
	"github.com/vigilo-ops/vigilo-backend-go/internal/pkg/jwt"
	"github.com/vigilo-ops/vigilo-backend-go/internal/repository/postgresql"
	assignmentService "github.com/vigilo-ops/vigilo-backend-go/internal/service/assignment"
	attendanceService "github.com/vigilo-ops/vigilo-backend-go/internal/service/attendance"
	workloadService "github.com/vigilo-ops/vigilo-backend-go/internal/service/workload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	txManager := database.NewTxManager(db)

	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	objectiveRepo := postgresql.NewObjectiveRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	workloadSvc := workloadService.NewWorkloadService(
		employeeRepo,
		shiftRepo,
		absenceRepo,
		workloadService.NewZeroNightHoursCalculator(),
		loc,
	)
	assignmentSvc := assignmentService.NewAssignmentService(txManager, shiftRepo, objectiveRepo, workloadSvc)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, shiftRepo, objectiveRepo, cfg.Geofence.RadiusKm)

	shiftHandler := appHTTP.NewShiftHandler(assignmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	workloadHandler := appHTTP.NewWorkloadHandler(workloadSvc, assignmentSvc)

	router := appHTTP.NewRouter(cfg.App.Env, JWTService, shiftHandler, attendanceHandler, workloadHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
