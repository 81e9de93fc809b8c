package pool

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

var firstNames = []string{
	"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Avery", "Peyton", "Quinn",
	"Cameron", "Drew", "Skyler", "Reese", "Rowan", "Sawyer", "Emerson", "Finley", "Harper", "Logan",
	"Charlie", "Dakota", "Elliot", "Hayden", "Jesse", "Kai", "Lane", "Micah", "Parker", "Remy",
	"Sage", "Tatum", "Blake", "Corey", "Devon", "Eden", "Frankie", "Greer", "Hollis", "Indigo",
	"Jules", "Kendall", "Lennon", "Marley", "Nico", "Oakley", "Phoenix", "Reagan", "Shiloh", "Teagan",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson",
	"Walker", "Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
	"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
}

var companies = []string{
	"Google", "Microsoft", "Amazon", "Facebook", "Apple", "Netflix", "Uber", "Airbnb", "Salesforce", "Adobe",
	"Tesla", "Coinbase", "Twitter", "Spotify", "LinkedIn", "Stripe", "Square", "Shopify", "Slack", "Zoom",
	"Oracle", "SAP", "Intel", "Cisco", "Nvidia", "Dropbox", "Atlassian", "Reddit", "Pinterest", "Snap",
	"Palantir", "Twilio", "MongoDB", "Cloudflare", "Datadog", "Okta", "Snowflake", "GitHub", "GitLab", "Asana",
}

var locations = []string{
	"San Francisco, CA", "Seattle, WA", "New York, NY", "Los Angeles, CA", "Austin, TX", "Boston, MA",
	"Chicago, IL", "Denver, CO", "Atlanta, GA", "Portland, OR", "San Jose, CA", "Dallas, TX", "San Diego, CA",
	"Washington, DC", "Houston, TX", "Miami, FL", "Phoenix, AZ", "Philadelphia, PA", "Minneapolis, MN", "Charlotte, NC",
}

var titles = []string{
	"Software Engineer", "Frontend Developer", "Backend Developer", "Full Stack Developer", "DevOps Engineer",
	"Data Scientist", "Product Manager", "QA Engineer", "Cloud Architect", "Security Engineer",
	"Machine Learning Engineer", "Site Reliability Engineer", "Mobile Developer", "UX Designer", "Blockchain Developer",
}

var educations = []string{
	"Computer Science, Stanford University", "Software Engineering, MIT", "Computer Engineering, UC Berkeley",
	"Information Systems, Carnegie Mellon", "Statistics, Harvard University", "Electrical Engineering, Caltech",
	"Business Administration, Wharton", "Design, Parsons School of Design", "Cybersecurity, Georgia Tech",
	"Data Science, Columbia University",
}

var skillSets = [][]string{
	{"JavaScript", "React", "Node.js", "TypeScript", "AWS", "Docker"},
	{"Python", "Django", "Flask", "Pandas", "NumPy", "TensorFlow"},
	{"Java", "Spring Boot", "Kubernetes", "SQL", "Redis", "Kafka"},
	{"C#", ".NET", "Azure", "Angular", "SQL Server", "CI/CD"},
	{"Go", "Microservices", "gRPC", "Kubernetes", "Prometheus", "Grafana"},
	{"Swift", "iOS", "Objective-C", "Firebase", "Git", "Xcode"},
	{"Kotlin", "Android", "Java", "Retrofit", "Room", "Dagger"},
	{"PHP", "Laravel", "MySQL", "Vue.js", "Nginx", "Redis"},
	{"Ruby", "Rails", "PostgreSQL", "Sidekiq", "RSpec", "Capybara"},
	{"Scala", "Akka", "Spark", "Hadoop", "Cassandra", "Zookeeper"},
	{"HTML", "CSS", "Sass", "Bootstrap", "Webpack", "Jest"},
	{"C++", "Qt", "OpenGL", "Linux", "CMake", "GTest"},
	{"R", "Shiny", "ggplot2", "dplyr", "Tidyverse", "Caret"},
	{"SQL", "ETL", "Data Warehousing", "Tableau", "PowerBI", "Looker"},
	{"Machine Learning", "Deep Learning", "PyTorch", "Scikit-learn", "OpenCV", "NLP"},
	{"Product Management", "Agile", "Scrum", "Jira", "Confluence", "A/B Testing"},
	{"QA", "Selenium", "Cypress", "Mocha", "Chai", "Jenkins"},
	{"Cloud", "AWS", "Azure", "GCP", "Terraform", "Ansible"},
	{"Security", "Penetration Testing", "SIEM", "Incident Response", "Linux", "Python"},
	{"UI/UX Design", "Figma", "Sketch", "Adobe XD", "User Research", "Prototyping"},
}

// NewSyntheticPool generates size candidates from fixed attribute tables.
// The same seed always yields the same pool, which keeps scoring runs
// reproducible across restarts.
func NewSyntheticPool(size int, seed int64) Provider {
	if size <= 0 {
		size = 1000
	}
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()

	candidates := make([]model.Candidate, 0, size)
	for i := 1; i <= size; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		company := companies[rng.Intn(len(companies))]
		title := titles[rng.Intn(len(titles))]
		skills := skillSets[rng.Intn(len(skillSets))]
		years := rng.Intn(11) + 1

		candidates = append(candidates, model.Candidate{
			ID:          fmt.Sprintf("candidate_%d", i),
			Name:        first + " " + last,
			LinkedinURL: fmt.Sprintf("https://linkedin.com/in/%s-%s%d", strings.ToLower(first), strings.ToLower(last), i),
			Headline:    title + " at " + company,
			Location:    locations[rng.Intn(len(locations))],
			Company:     company,
			Experience:  fmt.Sprintf("%d+ years", years),
			Education:   educations[rng.Intn(len(educations))],
			Skills:      skills,
			ExtractedAt: now,
		})
	}

	return &staticPool{candidates: candidates}
}
