package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"taskboard-backend/internal/config"
	"taskboard-backend/internal/database"
	"taskboard-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
}

type MembershipData struct {
	UserEmail        string `yaml:"user_email"`
	OrganizationName string `yaml:"organization_name"`
	Role             string `yaml:"role"`
}

type TaskData struct {
	OrganizationName string `yaml:"organization_name"`
	Title            string `yaml:"title"`
	Description      string `yaml:"description"`
	Status           string `yaml:"status"`
	Priority         string `yaml:"priority"`
	AssigneeEmail    string `yaml:"assignee_email,omitempty"`
	CreatedByEmail   string `yaml:"created_by_email"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	tasks, err := loadTasks(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create memberships
	membershipCreated := 0
	for _, membershipData := range memberships {
		_, created, err := createMembership(db, membershipData, orgMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w", membershipData.UserEmail, membershipData.OrganizationName, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("📋 Memberships: %d created, %d total", membershipCreated, len(memberships))

	// Create tasks
	taskCreated := 0
	for _, taskData := range tasks {
		_, created, err := createTask(db, taskData, orgMap, userMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create task %s: %v", taskData.Title, err)
			continue // Continue with other tasks
		}
		if created {
			taskCreated++
		}
	}
	log.Printf("📋 Tasks: %d created, %d total", taskCreated, len(tasks))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "memberships") {
			var file MembershipsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMemberships = append(allMemberships, file.Memberships...)
		}
		return nil
	})

	return allMemberships, err
}

func loadTasks(dataDir string) ([]TaskData, error) {
	var allTasks []TaskData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tasks") {
			var file TasksFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTasks = append(allTasks, file.Tasks...)
		}
		return nil
	})

	return allTasks, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				Description: orgData.Description,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
	}

	return &org, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(userData.Email)).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			user = models.User{
				Email:        strings.ToLower(userData.Email),
				FullName:     userData.FullName,
				PasswordHash: string(hash),
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil
}

func createMembership(db *gorm.DB, membershipData MembershipData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (*models.Membership, bool, error) {
	org := orgMap[membershipData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for membership", membershipData.OrganizationName)
	}

	user := userMap[membershipData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found for membership", membershipData.UserEmail)
	}

	role := models.OrgRole(membershipData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", membershipData.Role)
	}

	var membership models.Membership
	if err := db.Where("user_id = ? AND organization_id = ?", user.ID, org.ID).First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			membership = models.Membership{
				UserID:         user.ID,
				OrganizationID: org.ID,
				Role:           role,
			}

			if err := db.Create(&membership).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create membership: %w", err)
			}
			return &membership, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query membership: %w", err)
		}
	}

	return &membership, false, nil
}

func createTask(db *gorm.DB, taskData TaskData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (*models.Task, bool, error) {
	org := orgMap[taskData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for task %s", taskData.OrganizationName, taskData.Title)
	}

	createdBy := userMap[taskData.CreatedByEmail]
	if createdBy == nil {
		return nil, false, fmt.Errorf("user %s not found for task %s", taskData.CreatedByEmail, taskData.Title)
	}

	status := models.TaskStatus(taskData.Status)
	if status == "" {
		status = models.TaskStatusTodo
	}
	priority := models.TaskPriority(taskData.Priority)
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	var task models.Task
	if err := db.Where("organization_id = ? AND title = ?", org.ID, taskData.Title).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			task = models.Task{
				OrganizationID: org.ID,
				Title:          taskData.Title,
				Description:    taskData.Description,
				Status:         status,
				Priority:       priority,
				CreatedByID:    createdBy.ID,
			}

			if assignee := userMap[taskData.AssigneeEmail]; assignee != nil {
				task.AssigneeID = &assignee.ID
			}

			if err := db.Create(&task).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create task: %w", err)
			}
			return &task, true, nil
		} else {
			return nil, false, fmt.Errorf("failed to query task: %w", err)
		}
	}

	return &task, false, nil
}
