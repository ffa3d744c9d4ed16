package usecase

import (
	"github.com/fadilmartias/transcript-analyzer/internal/model"
	"github.com/fadilmartias/transcript-analyzer/internal/scoring"
)

// seedCourses is the built-in slice of well-known courses, mostly weeders,
// used to seed the difficulty catalog.
func seedCourses() []model.CourseDifficulty {
	rows := []model.CourseDifficulty{
		{University: "berkeley", Department: "CS", Number: "61A", Name: "Structure and Interpretation of Computer Programs", Aliases: "COMPSCI 61A", Difficulty: 6.5, IsTechnical: true},
		{University: "berkeley", Department: "CS", Number: "61B", Name: "Data Structures", Aliases: "COMPSCI 61B", Difficulty: 7.0, IsTechnical: true},
		{University: "berkeley", Department: "CS", Number: "70", Name: "Discrete Mathematics and Probability Theory", Aliases: "COMPSCI 70", Difficulty: 8.5, IsTechnical: true},
		{University: "berkeley", Department: "CS", Number: "162", Name: "Operating Systems and System Programming", Aliases: "COMPSCI 162", Difficulty: 9.0, IsTechnical: true},
		{University: "berkeley", Department: "CS", Number: "170", Name: "Efficient Algorithms and Intractable Problems", Aliases: "COMPSCI 170", Difficulty: 8.5, IsTechnical: true},
		{University: "berkeley", Department: "EECS", Number: "16A", Name: "Designing Information Devices and Systems I", Difficulty: 7.0, IsTechnical: true},
		{University: "berkeley", Department: "MATH", Number: "1B", Name: "Calculus", Difficulty: 6.0, IsTechnical: true},
		{University: "mit", Department: "MATH", Number: "18", Name: "Linear Algebra", Aliases: "18.06", Difficulty: 7.5, IsTechnical: true},
		{University: "mit", Department: "CS", Number: "6006", Name: "Introduction to Algorithms", Aliases: "6.006", Difficulty: 8.5, IsTechnical: true},
		{University: "mit", Department: "CS", Number: "6824", Name: "Distributed Systems", Aliases: "6.824,6.5840", Difficulty: 9.5, IsTechnical: true},
		{University: "stanford", Department: "CS", Number: "106B", Name: "Programming Abstractions", Difficulty: 6.0, IsTechnical: true},
		{University: "stanford", Department: "CS", Number: "107", Name: "Computer Organization and Systems", Difficulty: 7.5, IsTechnical: true},
		{University: "stanford", Department: "CS", Number: "229", Name: "Machine Learning", Difficulty: 8.5, IsTechnical: true},
		{University: "cmu", Department: "CS", Number: "15213", Name: "Introduction to Computer Systems", Aliases: "15-213", Difficulty: 8.5, IsTechnical: true},
		{University: "cmu", Department: "CS", Number: "15445", Name: "Database Systems", Aliases: "15-445", Difficulty: 8.0, IsTechnical: true},
		{University: "harvard", Department: "CS", Number: "50", Name: "Introduction to Computer Science", Aliases: "CS50", Difficulty: 5.5, IsTechnical: true},
		{University: "harvard", Department: "MATH", Number: "55", Name: "Studies in Algebra and Group Theory", Difficulty: 10.0, IsTechnical: true},
		{University: "caltech", Department: "PHYSICS", Number: "1A", Name: "Classical Mechanics", Aliases: "PH 1A", Difficulty: 8.0, IsTechnical: true},
		{University: "gatech", Department: "CS", Number: "3600", Name: "Introduction to Artificial Intelligence", Difficulty: 7.0, IsTechnical: true},
		{University: "uiuc", Department: "CS", Number: "374", Name: "Introduction to Algorithms and Models of Computation", Aliases: "CS 374", Difficulty: 8.5, IsTechnical: true},
	}
	for i := range rows {
		rows[i].ID = scoring.CatalogID(rows[i].University, rows[i].Department, rows[i].Number)
	}
	return rows
}
