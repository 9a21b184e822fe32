package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/raid-bits/shift-compliance/backend/internal/domain"
	"github.com/raid-bits/shift-compliance/backend/internal/randomizer"
)

var commonFirstNames = []string{
	"Arjun", "Priya", "Rohan", "Ananya", "Vikram", "Kavya", "Aditya", "Meera",
	"Rahul", "Sneha", "Karan", "Divya", "Nikhil", "Pooja", "Sanjay", "Ritu",
	"Amit", "Neha", "Deepak", "Lakshmi",
}
var commonLastNames = []string{
	"Sharma", "Mehta", "Iyer", "Nair", "Patel", "Reddy", "Gupta", "Singh",
	"Kulkarni", "Das", "Chopra", "Menon", "Joshi", "Verma", "Rao", "Bose",
}
var designations = []string{
	"Operator", "Technician", "Supervisor", "Loader", "Electrician", "Fitter",
}

func GenerateRandomName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

func GenerateRandomShift() string {
	return randomizer.ShiftNames[rand.Intn(len(randomizer.ShiftNames))]
}

var digits = "0123456789"

func GenerateRandomEmployeeID() string {
	id := make([]byte, 4)
	for i := range id {
		id[i] = digits[rand.Intn(len(digits))]
	}
	return "EMP" + string(id)
}

func GenerateRandomPhone() string {
	// Indian mobile numbers start with 6-9
	phone := make([]byte, 10)
	phone[0] = digits[rand.Intn(4)+6]
	for i := 1; i < len(phone); i++ {
		phone[i] = digits[rand.Intn(len(digits))]
	}
	return string(phone)
}

func GenerateRandomEmployee(emailDomainName string) *domain.Employee {
	name := GenerateRandomName()
	handle := strings.ToLower(strings.ReplaceAll(name, " ", "."))

	return &domain.Employee{
		EmployeeID:  GenerateRandomEmployeeID(),
		Name:        name,
		Designation: designations[rand.Intn(len(designations))],
		Email:       fmt.Sprintf("%s%d@%s", handle, rand.Intn(1000), emailDomainName),
		Phone:       GenerateRandomPhone(),
		Shift:       GenerateRandomShift(),
	}
}
