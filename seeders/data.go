package seeders

type teamSeed struct {
	Name        string
	Description string
}

type technicianSeed struct {
	Name  string
	Email string
	Team  string
}

type equipmentSeed struct {
	Name             string
	SerialNumber     string
	Department       string
	AssignedEmployee string
	Location         string
	PurchaseDate     string
	WarrantyEnd      string
	Team             string
}

var teamSeeds = []teamSeed{
	{Name: "Mechanics", Description: "Mechanical maintenance and repairs"},
	{Name: "Electricians", Description: "Electrical systems and wiring"},
	{Name: "IT Support", Description: "Computers, printers and network equipment"},
}

var technicianSeeds = []technicianSeed{
	{Name: "John Smith", Email: "john.smith@gearguard.local", Team: "Mechanics"},
	{Name: "Mike Johnson", Email: "mike.johnson@gearguard.local", Team: "Mechanics"},
	{Name: "Sarah Williams", Email: "sarah.williams@gearguard.local", Team: "Electricians"},
	{Name: "Tom Brown", Email: "tom.brown@gearguard.local", Team: "Electricians"},
	{Name: "Emily Davis", Email: "emily.davis@gearguard.local", Team: "IT Support"},
	{Name: "Chris Wilson", Email: "chris.wilson@gearguard.local", Team: "IT Support"},
}

var equipmentSeeds = []equipmentSeed{
	{
		Name: "CNC Milling Machine", SerialNumber: "CNC-2021-001",
		Department: "Production", AssignedEmployee: "Alan Turner", Location: "Workshop A",
		PurchaseDate: "2021-03-15", WarrantyEnd: "2026-03-15", Team: "Mechanics",
	},
	{
		Name: "Industrial Air Compressor", SerialNumber: "AC-2020-014",
		Department: "Production", AssignedEmployee: "Bruce Hale", Location: "Workshop B",
		PurchaseDate: "2020-07-01", WarrantyEnd: "2025-07-01", Team: "Mechanics",
	},
	{
		Name: "Backup Power Generator", SerialNumber: "GEN-2019-003",
		Department: "Facilities", AssignedEmployee: "Clara Young", Location: "Basement",
		PurchaseDate: "2019-11-20", WarrantyEnd: "2024-11-20", Team: "Electricians",
	},
	{
		Name: "Office Laser Printer", SerialNumber: "PRN-2022-108",
		Department: "Administration", AssignedEmployee: "Dana Reed", Location: "Office 2F",
		PurchaseDate: "2022-01-10", WarrantyEnd: "2025-01-10", Team: "IT Support",
	},
	{
		Name: "Server Rack Unit", SerialNumber: "SRV-2023-042",
		Department: "IT", AssignedEmployee: "Evan Price", Location: "Server Room",
		PurchaseDate: "2023-05-02", WarrantyEnd: "2028-05-02", Team: "IT Support",
	},
}
