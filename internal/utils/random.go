package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/wachplan-dev/wachplan/backend/internal/domain"
	"github.com/wachplan-dev/wachplan/backend/internal/wage"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Lukas", "Leon", "Finn", "Jonas", "Paul", "Maximilian", "Felix", "Noah", "Elias", "Ben",
	"Mia", "Emma", "Hannah", "Sofia", "Anna", "Lea", "Lena", "Marie", "Laura", "Julia",
	"Thomas", "Michael", "Stefan", "Andreas", "Peter", "Sabine", "Claudia", "Monika", "Petra", "Katrin",
}
var commonLastNames = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann",
	"Koch", "Bauer", "Richter", "Klein", "Wolf", "Schröder", "Neumann", "Schwarz", "Zimmermann", "Braun",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var roles = []domain.Role{
	domain.RoleDispatcher,
	domain.RoleGuard,
	domain.RoleGuard,
	domain.RoleGuard, // guards dominate a realistic staff mix
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

// GenerateUsernameFromFullName lowercases the name, strips umlauts and joins
// first and last name with a dot, plus a short digit suffix for uniqueness.
func GenerateUsernameFromFullName(fullName string) string {
	replacer := strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss", " ", ".")
	username := replacer.Replace(strings.ToLower(fullName))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	groups := wage.Groups()

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
		WageGroup:    groups[rand.Intn(len(groups))],
	}

	if rand.Intn(3) == 0 {
		user.Qualifications = []string{"Sachkundeprüfung §34a"}
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

var siteKinds = []string{"Bürogebäude", "Logistikzentrum", "Baustelle", "Einkaufszentrum", "Rechenzentrum", "Klinikum"}
var siteCities = []string{"Berlin", "Hamburg", "München", "Köln", "Frankfurt", "Stuttgart", "Leipzig", "Dortmund"}

func GenerateRandomSite() *domain.Site {
	kind := siteKinds[rand.Intn(len(siteKinds))]
	city := siteCities[rand.Intn(len(siteCities))]

	site := &domain.Site{
		Name:        fmt.Sprintf("%s %s %s", kind, city, GenerateRandomID(0, 3)),
		Address:     fmt.Sprintf("Industriestraße %d, %s", rand.Intn(200)+1, city),
		Description: "Bewachungsobjekt " + kind,
	}

	if rand.Intn(2) == 0 {
		site.RequiredQualifications = []string{"Sachkundeprüfung §34a"}
	}
	if rand.Intn(4) == 0 {
		override := 16.0 + float64(rand.Intn(600))/100
		site.HourlyWageOverride = &override
	}

	return site
}

// Fisher-Yates over the weekday indices 0-6, then a random non-empty prefix.
func GenerateRandomApplicableDays() []int32 {
	days := []int32{0, 1, 2, 3, 4, 5, 6}

	for i := len(days) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		days[i], days[j] = days[j], days[i]
	}

	n := rand.Intn(len(days)) + 1

	return days[:n]
}

func GenerateRandomShiftTemplate() *domain.ShiftTemplate {
	st := domain.ShiftTemplate{
		Name:        "Schichtmodell " + GenerateRandomID(3, 3),
		Description: "Automatisch erzeugtes Schichtmodell " + GenerateRandomID(10, 5),
	}

	shiftsNum := rand.Intn(3) + 1
	shifts := make([]domain.ShiftTemplateShift, shiftsNum)
	hoursPerShift := 24 / shiftsNum

	for i := range shifts {
		startHour := i * hoursPerShift
		endHour := (startHour + hoursPerShift) % 24

		shifts[i] = domain.ShiftTemplateShift{
			Name:           fmt.Sprintf("Schicht %d", i+1),
			StartTime:      fmt.Sprintf("%02d:00", startHour),
			EndTime:        fmt.Sprintf("%02d:00", endHour),
			RequiredStaff:  int32(rand.Intn(3) + 1),
			ApplicableDays: GenerateRandomApplicableDays(),
		}
	}

	st.Shifts = shifts

	return &st
}
