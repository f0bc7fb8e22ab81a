package seed

import (
	"time"

	"github.com/yigit/unipay/internal/app/models"
)

// Fixed reference data and credentials for development databases.
const (
	officerPassword = "admin123"
	studentPassword = "password123"
	superPassword   = "admin123"

	superOfficerUsername = "superofficer"
	superStudentUsername = "superstudent"

	academicYear = models.AcademicYear2024
	semester     = models.SemesterFirst

	// paymentRequestTTL is how long a generated request stays payable
	paymentRequestTTL = 30 * time.Minute
	maxQueueNumber    = 999
	studentIDBase     = 10000
)

type organizationSeed struct {
	code string
	name string
}

var organizationSeeds = []organizationSeed{
	{"BIO", "Bachelor of Science in Biology"},
	{"MBIO", "Bachelor of Science in Marine Biology"},
	{"BSCS", "Bachelor of Science in Computer Science"},
	{"BSES", "Bachelor of Science in Environmental Science"},
	{"BSIT", "Bachelor of Science in Information Technology"},
	{"STUDORG", "Student organizations"},
}

type collegeSeed struct {
	name string
	code string
}

var collegeSeeds = []collegeSeed{
	{"College of Sciences", "COS"},
	{"College of Engineering", "COE"},
	{"College of Arts and Letters", "CAL"},
	{"College of Business Administration", "CBA"},
}

// courseSeed references its college by index into collegeSeeds
type courseSeed struct {
	name    string
	code    string
	college int
}

var courseSeeds = []courseSeed{
	{"Bachelor of Science in Biology", "BSBIO", 0},
	{"Bachelor of Science in Marine Biology", "BSMBIO", 0},
	{"Bachelor of Science in Computer Science", "BSCS", 0},
	{"Bachelor of Science in Environmental Science", "BSES", 0},
	{"Bachelor of Science in Information Technology", "BSIT", 0},
	{"Bachelor of Science in Chemistry", "BSCHEM", 0},
	{"Bachelor of Science in Mathematics", "BSMATH", 0},
	{"Bachelor of Science in Civil Engineering", "BSCE", 1},
	{"Bachelor of Science in Electrical Engineering", "BSEE", 1},
	{"Bachelor of Arts in English", "BAENG", 2},
	{"Bachelor of Science in Business Administration", "BSBA", 3},
}
