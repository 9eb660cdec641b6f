package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookadoc-service/internal/app/config"
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/delivery/http/routers"
	"bookadoc-service/internal/app/drivers/database"
	"bookadoc-service/internal/app/drivers/logger"
	"bookadoc-service/internal/app/services/auth"
	"bookadoc-service/internal/app/services/availabilities"
	"bookadoc-service/internal/app/services/bookings"
	"bookadoc-service/internal/app/services/doctoravailabilities"
	"bookadoc-service/internal/app/services/doctorcentres"
	"bookadoc-service/internal/app/services/doctors"
	"bookadoc-service/internal/app/services/medicalcentres"
	"bookadoc-service/internal/app/services/patients"
	"bookadoc-service/internal/app/services/specialties"
	"bookadoc-service/internal/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	if internalConfig.App.Env == "production" && internalConfig.JWT.Secret == "default_secret" {
		log.Fatal("JWT_SECRET must be set in production")
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(&config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	zapLogger.Info("shutting down, draining in-flight requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := mongoDB.Disconnect(shutdownCtx); err != nil {
		zapLogger.Error("failed to close mongo connection", zap.Error(err))
	}

	zapLogger.Info("server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	collector := metrics.NewCollector("bookadoc")

	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	specialtyRepository := specialties.NewSpecialtyMongoRepository(bootstrap.MongoDB, dbName)
	medicalCentreRepository := medicalcentres.NewMedicalCentreMongoRepository(bootstrap.MongoDB, dbName)
	availabilityRepository := availabilities.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	doctorCentreRepository := doctorcentres.NewDoctorCentreMongoRepository(bootstrap.MongoDB, dbName)
	doctorAvailabilityRepository := doctoravailabilities.NewDoctorAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, dbName)

	patientUsecase := patients.NewPatientUsecase(patientRepository, collector, bootstrap.InternalConfig)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, specialtyRepository, doctorAvailabilityRepository, availabilityRepository)
	specialtyUsecase := specialties.NewSpecialtyUsecase(specialtyRepository)
	medicalCentreUsecase := medicalcentres.NewMedicalCentreUsecase(medicalCentreRepository)
	availabilityUsecase := availabilities.NewAvailabilityUsecase(availabilityRepository)
	doctorCentreUsecase := doctorcentres.NewDoctorCentreUsecase(doctorCentreRepository, doctorRepository, medicalCentreRepository)
	doctorAvailabilityUsecase := doctoravailabilities.NewDoctorAvailabilityUsecase(doctorAvailabilityRepository, doctorRepository, availabilityRepository)
	bookingUsecase := bookings.NewBookingUsecase(bookingRepository, patientRepository, doctorRepository, medicalCentreRepository, availabilityRepository, collector)

	controllers := &routers.Controllers{
		Auth:               auth.NewAuthController(bootstrap.Logger, patientUsecase),
		Patient:            patients.NewPatientController(bootstrap.Logger, patientUsecase),
		Doctor:             doctors.NewDoctorController(bootstrap.Logger, doctorUsecase),
		Specialty:          specialties.NewSpecialtyController(bootstrap.Logger, specialtyUsecase),
		MedicalCentre:      medicalcentres.NewMedicalCentreController(bootstrap.Logger, medicalCentreUsecase),
		Availability:       availabilities.NewAvailabilityController(bootstrap.Logger, availabilityUsecase),
		DoctorCentre:       doctorcentres.NewDoctorCentreController(bootstrap.Logger, doctorCentreUsecase),
		DoctorAvailability: doctoravailabilities.NewDoctorAvailabilityController(bootstrap.Logger, doctorAvailabilityUsecase),
		Booking:            bookings.NewBookingController(bootstrap.Logger, bookingUsecase),
	}

	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, collector)

	routers.SetupRoutes(bootstrap.Router, bootstrap.Logger, bootstrap.InternalConfig, mw, controllers)
}
