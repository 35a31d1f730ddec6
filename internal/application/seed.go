package application

import "retreat/internal/domain"

// testPersons is the demo cast used by SeedTestParticipants.
var testPersons = []struct {
	name   string
	gender domain.Gender
}{
	{"María García", domain.GenderFemale},
	{"Carlos López", domain.GenderMale},
	{"Ana Martínez", domain.GenderFemale},
	{"Pedro Sánchez", domain.GenderMale},
	{"Laura Fernández", domain.GenderFemale},
	{"Diego Rodríguez", domain.GenderMale},
	{"Sofía Hernández", domain.GenderFemale},
	{"Javier Torres", domain.GenderMale},
	{"Elena Ruiz", domain.GenderFemale},
	{"Miguel Díaz", domain.GenderMale},
	{"Lucía Moreno", domain.GenderFemale},
	{"Andrés Jiménez", domain.GenderMale},
	{"Carmen Álvarez", domain.GenderFemale},
	{"Pablo Romero", domain.GenderMale},
	{"Isabel Navarro", domain.GenderFemale},
	{"Fernando Gil", domain.GenderMale},
	{"Marta Molina", domain.GenderFemale},
	{"Raúl Serrano", domain.GenderMale},
	{"Patricia Blanco", domain.GenderFemale},
	{"Tomás Castro", domain.GenderMale},
}
