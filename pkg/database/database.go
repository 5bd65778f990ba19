package database

import (
	"fmt"
	"lingua_edu_backend/internal/config"
	"lingua_edu_backend/internal/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate creates the full ownership graph. Parent tables migrate
// first so the cascade constraints have something to reference.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Group{},
		&model.User{},
		&model.Category{},
		&model.Course{},
		&model.Quiz{},
		&model.Question{},
		&model.Option{},
		&model.FillInBlankQuestion{},
		&model.FillInBlankOption{},
		&model.Enrollment{},
		&model.QuizResult{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// SeedAdmin bootstraps a default administrator so the content
// management surface is reachable on a fresh install.
func SeedAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	var count int64
	db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		FirstName: "Admin",
		Email:     email,
		Password:  string(hashed),
		Role:      model.Admin,
	}
	return db.Create(admin).Error
}
