package db

import (
	_ "embed"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"hr-records-backend/config"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	linestore "hr-records-backend/lib/dicts/line/store"
	employeesstore "hr-records-backend/lib/employees/store"
	usersstore "hr-records-backend/lib/users/store"
	"hr-records-backend/models"
	dbmodels "hr-records-backend/models/db"
)

type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	DemoData      bool
	DemoPassword  string
}

func InitPreload() {
	opts := SeedOptions{
		AdminEmail:    config.Conf.Seed.AdminEmail,
		AdminPassword: config.Conf.Seed.AdminPassword,
		DemoData:      *config.Conf.Seed.DemoData,
		DemoPassword:  config.Conf.Seed.DemoPassword,
	}
	if err := Seed(DB, opts); err != nil {
		log.WithError(err).Error("ошибка заполнения справочных данных")
	}
}

// Seed заполнение начальных данных, существующие записи пропускаются
func Seed(tx *gorm.DB, opts SeedOptions) error {
	if err := addAdmin(tx, opts); err != nil {
		return err
	}
	if !opts.DemoData {
		return nil
	}
	data, err := loadDemoData()
	if err != nil {
		return err
	}
	departments, lines, err := fillDepartments(tx, data)
	if err != nil {
		return err
	}
	if err = fillEmployees(tx, data, departments, lines); err != nil {
		return err
	}
	return addDemoUsers(tx, data, opts.DemoPassword)
}

func addAdmin(tx *gorm.DB, opts SeedOptions) error {
	if opts.AdminEmail == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return nil
	}
	return addUser(usersstore.NewInstance(tx), dbmodels.User{
		Email:     opts.AdminEmail,
		FirstName: "Администратор",
		Role:      models.AdminRole,
		IsActive:  true,
	}, opts.AdminPassword)
}

func addUser(store usersstore.Provider, rec dbmodels.User, password string) error {
	exist, err := store.ExistByEmail(rec.Email)
	if err != nil {
		return errors.Wrap(err, "ошибка проверки пользователя")
	}
	if exist {
		return nil
	}
	if password == "" {
		return errors.Errorf("не задан пароль пользователя %v", rec.Email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "ошибка хеширования пароля")
	}
	rec.Password = string(hash)
	if _, err = store.Create(rec); err != nil {
		return errors.Wrapf(err, "ошибка добавления пользователя %v", rec.Email)
	}
	log.WithField("email", rec.Email).Info("добавлен пользователь")
	return nil
}

//go:embed demo.yaml
var demoYAML []byte

type demoData struct {
	Departments []struct {
		Name  string   `yaml:"name"`
		Lines []string `yaml:"lines"`
	} `yaml:"departments"`
	Employees []struct {
		IDNo       string  `yaml:"idno"`
		FirstName  string  `yaml:"first_name"`
		LastName   string  `yaml:"last_name"`
		Position   string  `yaml:"position"`
		Salary     float64 `yaml:"salary"`
		Department string  `yaml:"department"`
		Line       string  `yaml:"line"`
	} `yaml:"employees"`
	Users []struct {
		Email     string          `yaml:"email"`
		FirstName string          `yaml:"first_name"`
		LastName  string          `yaml:"last_name"`
		Role      models.UserRole `yaml:"role"`
	} `yaml:"users"`
}

func loadDemoData() (demoData, error) {
	var data demoData
	if err := yaml.Unmarshal(demoYAML, &data); err != nil {
		return data, errors.Wrap(err, "ошибка разбора демо данных")
	}
	for _, user := range data.Users {
		if !user.Role.IsValid() {
			return data, errors.Errorf("неизвестная роль %q у пользователя %v", user.Role, user.Email)
		}
	}
	return data, nil
}

// fillDepartments возвращает ид подразделений и линий по названию
func fillDepartments(tx *gorm.DB, data demoData) (departments, lines map[string]string, err error) {
	departmentStore := departmentstore.NewInstance(tx)
	lineStore := linestore.NewInstance(tx)
	departments = map[string]string{}
	lines = map[string]string{}
	for _, item := range data.Departments {
		rec, err := departmentStore.FindByName(item.Name)
		if err != nil {
			return nil, nil, errors.Wrap(err, "ошибка поиска подразделения")
		}
		departmentID := ""
		if rec != nil {
			departmentID = rec.ID
		} else if departmentID, err = departmentStore.Create(dbmodels.Department{Name: item.Name}); err != nil {
			return nil, nil, errors.Wrapf(err, "ошибка добавления подразделения %v", item.Name)
		}
		departments[item.Name] = departmentID

		for _, name := range item.Lines {
			line, err := lineStore.FindByName(departmentID, name)
			if err != nil {
				return nil, nil, errors.Wrap(err, "ошибка поиска линии")
			}
			if line != nil {
				lines[name] = line.ID
				continue
			}
			id, err := lineStore.Create(dbmodels.Line{DepartmentID: departmentID, Name: name})
			if err != nil {
				return nil, nil, errors.Wrapf(err, "ошибка добавления линии %v", name)
			}
			lines[name] = id
		}
	}
	return departments, lines, nil
}

func fillEmployees(tx *gorm.DB, data demoData, departments, lines map[string]string) error {
	store := employeesstore.NewInstance(tx)
	hireDate := time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC)
	for _, item := range data.Employees {
		exist, err := store.GetByIDNo(item.IDNo)
		if err != nil {
			return errors.Wrap(err, "ошибка поиска сотрудника")
		}
		if exist != nil {
			continue
		}
		rec := dbmodels.Employee{
			IDNo:      item.IDNo,
			FirstName: item.FirstName,
			LastName:  item.LastName,
			Position:  item.Position,
			Salary:    item.Salary,
			HireDate:  &hireDate,
			IsActive:  true,
		}
		if id, ok := departments[item.Department]; ok {
			rec.DepartmentID = &id
		}
		if id, ok := lines[item.Line]; ok {
			rec.LineID = &id
		}
		if _, err = store.Create(rec); err != nil {
			return errors.Wrapf(err, "ошибка добавления сотрудника %v", item.IDNo)
		}
	}
	return nil
}

func addDemoUsers(tx *gorm.DB, data demoData, password string) error {
	store := usersstore.NewInstance(tx)
	for _, item := range data.Users {
		rec := dbmodels.User{
			Email:     item.Email,
			FirstName: item.FirstName,
			LastName:  item.LastName,
			Role:      item.Role,
			IsActive:  true,
		}
		if err := addUser(store, rec, password); err != nil {
			return err
		}
	}
	return nil
}
