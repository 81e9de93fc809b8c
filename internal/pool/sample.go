package pool

import (
	"time"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

// NewSamplePool returns the small curated pool of well-known profiles,
// useful for demos and for exercising the pipeline without the synthetic
// generator.
func NewSamplePool() Provider {
	now := time.Now()
	return &staticPool{candidates: []model.Candidate{
		{
			ID:          "candidate_1",
			Name:        "Sarah Johnson",
			LinkedinURL: "https://linkedin.com/in/sarah-johnson",
			Headline:    "Senior Software Engineer at Google",
			Location:    "San Francisco, CA",
			Company:     "Google",
			Experience:  "8+ years",
			Education:   "Computer Science, Stanford University",
			Skills:      []string{"JavaScript", "React", "Node.js", "Python", "AWS", "Docker"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_2",
			Name:        "Michael Chen",
			LinkedinURL: "https://linkedin.com/in/michael-chen",
			Headline:    "Full Stack Developer at Microsoft",
			Location:    "Seattle, WA",
			Company:     "Microsoft",
			Experience:  "6+ years",
			Education:   "Software Engineering, University of Washington",
			Skills:      []string{"TypeScript", "React", "Angular", "C#", "Azure", "SQL"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_3",
			Name:        "Emily Rodriguez",
			LinkedinURL: "https://linkedin.com/in/emily-rodriguez",
			Headline:    "Frontend Engineer at Netflix",
			Location:    "Los Angeles, CA",
			Company:     "Netflix",
			Experience:  "5+ years",
			Education:   "Computer Science, UCLA",
			Skills:      []string{"JavaScript", "React", "Vue.js", "CSS", "HTML", "Webpack"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_4",
			Name:        "David Kim",
			LinkedinURL: "https://linkedin.com/in/david-kim",
			Headline:    "DevOps Engineer at Amazon",
			Location:    "Seattle, WA",
			Company:     "Amazon",
			Experience:  "7+ years",
			Education:   "Computer Engineering, University of California",
			Skills:      []string{"AWS", "Docker", "Kubernetes", "Jenkins", "Terraform", "Python"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_5",
			Name:        "Lisa Wang",
			LinkedinURL: "https://linkedin.com/in/lisa-wang",
			Headline:    "Data Scientist at Facebook",
			Location:    "San Francisco, CA",
			Company:     "Facebook",
			Experience:  "4+ years",
			Education:   "Statistics, UC Berkeley",
			Skills:      []string{"Python", "Machine Learning", "SQL", "Pandas", "Scikit-learn", "R"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_6",
			Name:        "James Wilson",
			LinkedinURL: "https://linkedin.com/in/james-wilson",
			Headline:    "Backend Engineer at Uber",
			Location:    "San Francisco, CA",
			Company:     "Uber",
			Experience:  "6+ years",
			Education:   "Computer Science, MIT",
			Skills:      []string{"Java", "Spring Boot", "PostgreSQL", "Redis", "Kafka", "Microservices"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_7",
			Name:        "Maria Garcia",
			LinkedinURL: "https://linkedin.com/in/maria-garcia",
			Headline:    "Product Manager at Airbnb",
			Location:    "San Francisco, CA",
			Company:     "Airbnb",
			Experience:  "5+ years",
			Education:   "Business Administration, Harvard",
			Skills:      []string{"Product Management", "Agile", "User Research", "Analytics", "SaaS", "A/B Testing"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_8",
			Name:        "Alex Thompson",
			LinkedinURL: "https://linkedin.com/in/alex-thompson",
			Headline:    "Mobile Developer at Instagram",
			Location:    "Menlo Park, CA",
			Company:     "Instagram",
			Experience:  "4+ years",
			Education:   "Computer Science, Carnegie Mellon",
			Skills:      []string{"Swift", "iOS", "Objective-C", "React Native", "Firebase", "Git"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_9",
			Name:        "Rachel Green",
			LinkedinURL: "https://linkedin.com/in/rachel-green",
			Headline:    "UX Designer at Spotify",
			Location:    "New York, NY",
			Company:     "Spotify",
			Experience:  "6+ years",
			Education:   "Design, Parsons School of Design",
			Skills:      []string{"UI/UX Design", "Figma", "Sketch", "Adobe Creative Suite", "User Research", "Prototyping"},
			ExtractedAt: now,
		},
		{
			ID:          "candidate_10",
			Name:        "Tom Anderson",
			LinkedinURL: "https://linkedin.com/in/tom-anderson",
			Headline:    "Security Engineer at Twitter",
			Location:    "San Francisco, CA",
			Company:     "Twitter",
			Experience:  "8+ years",
			Education:   "Cybersecurity, Georgia Tech",
			Skills:      []string{"Cybersecurity", "Penetration Testing", "Python", "Linux", "Network Security", "Incident Response"},
			ExtractedAt: now,
		},
	}}
}
