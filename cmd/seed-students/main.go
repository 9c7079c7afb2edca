package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/stemsi/school-registry/internal/config"
	"github.com/stemsi/school-registry/internal/database"
	"github.com/stemsi/school-registry/internal/logger"
	"github.com/stemsi/school-registry/internal/mapper"
	"github.com/stemsi/school-registry/internal/model"
	"github.com/stemsi/school-registry/internal/repository"
)

func main() {
	var (
		schoolName string
		count      int
	)
	flag.StringVar(&schoolName, "school", "Demo High School", "Name of the school to create")
	flag.IntVar(&count, "count", 20, "Number of students to create")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	schoolRepo := repository.NewSchoolRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	schoolMapper := mapper.NewSchoolMapper()
	studentMapper := mapper.NewStudentMapper()

	school := schoolMapper.ToSchool(model.SchoolDto{Name: schoolName})
	if err := schoolRepo.Save(ctx, school); err != nil {
		log.Fatal().Err(err).Msg("Failed to create school")
	}
	fmt.Printf("Created school %q with ID: %d\n", school.Name, school.ID)

	names := []string{
		"Lucia Garcia", "Mateo Lopez", "Sofia Martinez", "Hugo Sanchez", "Martina Perez",
		"Leo Gomez", "Paula Fernandez", "Daniel Ruiz", "Valeria Diaz", "Pablo Moreno",
		"Julia Alvarez", "Alvaro Romero", "Emma Navarro", "Adrian Torres", "Carla Dominguez",
		"David Vazquez", "Lola Ramos", "Mario Gil", "Alba Serrano", "Marcos Blanco",
	}

	successCount := 0
	for i := 0; i < count; i++ {
		full := names[i%len(names)]
		first, last, _ := strings.Cut(full, " ")

		dto := &model.StudentDto{
			Name:     first,
			Lastname: last,
			Email:    fmt.Sprintf("%s.%s.%d@example.edu", strings.ToLower(first), strings.ToLower(last), i+1),
			SchoolID: &school.ID,
		}
		student, err := studentMapper.ToStudent(dto)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to map student")
		}
		student.Age = 14 + i%5

		// Every third student gets a profile.
		if i%3 == 0 {
			student.Profile = &model.StudentProfile{Bio: fmt.Sprintf("%s joined the reading club.", first)}
		}

		if err := studentRepo.Save(ctx, student); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				fmt.Printf("Skipping %s: email %s already exists\n", full, dto.Email)
				continue
			}
			fmt.Printf("Error creating student %s: %v\n", full, err)
			continue
		}
		successCount++
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d students...\n", i+1)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d students.\n", successCount, count)
}
