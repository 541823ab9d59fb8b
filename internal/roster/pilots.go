package roster

import (
	"atn-virtual/crewcenter/internal/constants"
	"atn-virtual/crewcenter/internal/models/entities"
)

var defaultPilots = []entities.PilotRecord{
	{ID: "THT1001", Name: "Guillaume B.", Grade: constants.GradeCDB, Role: constants.RoleStaff, FsHubID: "23309", DefaultHours: "232h"},
	{ID: "THT1002", Name: "Alain L.", Grade: constants.GradeCDB, Role: constants.RoleStaff, FsHubID: "23385", DefaultHours: "190h"},
	{ID: "THT1003", Name: "Andrew F.", Grade: constants.GradeCDB, Role: constants.RoleStaff, FsHubID: "23387", DefaultHours: "598h"},
	{ID: "THT1004", Name: "Bonno T.", Grade: constants.GradePPL, Role: constants.RoleRegular, FsHubID: "23713", DefaultHours: "196h"},
	{ID: "THT1005", Name: "Frédéric B.", Grade: constants.GradeCPL, Role: constants.RoleRegular, FsHubID: "12054", DefaultHours: "288h"},
	{ID: "THT1006", Name: "Mattias G.", Grade: constants.GradeCDB, Role: constants.RoleStaff, FsHubID: "28103", DefaultHours: "74h"},
	{ID: "THT1007", Name: "Jordan M.", Grade: constants.GradeEP, Role: constants.RoleRegular, FsHubID: "19702", DefaultHours: "111h"},
	{ID: "THT1008", Name: "Mathieu G.", Grade: constants.GradeEP, Role: constants.RoleRegular, FsHubID: "1360", DefaultHours: "96h"},
	{ID: "THT1009", Name: "Daniel V.", Grade: constants.GradeEP, Role: constants.RoleRegular, FsHubID: "28217", DefaultHours: "0h"},
	{ID: "THT1010", Name: "Kévin", Grade: constants.GradeEP, Role: constants.RoleRegular, FsHubID: "28382", DefaultHours: "5h"},
}
