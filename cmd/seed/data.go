package main

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/sns-api/internal/application/dto"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

// features serializa la lista como texto JSON, igual que la guarda el panel de admin.
func features(items ...string) *string {
	b, _ := json.Marshal(items)
	return str(string(b))
}

func snsCompanyInfo() dto.CreateCompanyInfoRequest {
	return dto.CreateCompanyInfoRequest{
		CompanyName: "Star Network Solutions",
		Address:     str("Lilyrin Tower House No -39/1, 8th Floor, Road No -2, Dhanmondi, Dhaka 1205"),
		Phone:       str("+8801897974300"),
		Email:       str("info@snsbd.com"),
		Website:     str("https://www.snsbd.com"),
		Mission: str("Our mission is to create sustainable and gainful business models to serve our customers. " +
			"Our core value is maintaining '5S Operation Model' (Support, Strength, Standardization, Sustainability and Success) " +
			"where we Support our stakeholders to increase their Strength for building Standardized & Sustainable solutions " +
			"for all of our stakeholders to ascend them to Success."),
		Vision: str("Our vision is to become one of the top business leaders in terms of providing sustainable " +
			"technology-based advanced solutions to our customers."),
		AboutUs: str("SNS Founded in 2023, we have earning experience, continued success and a well-satisfied clientele. " +
			"We are powered by highly skilled professionals, across various domains, whose experience can transform organizations. " +
			"Star Network Solutions (SNS) is formed by passionate, tech-enthusiast and hardworking key people who dreamt of " +
			"helping people and other businesses by adding technology-driven value to their services."),
		FoundedYear:        num(2023),
		TotalClients:       num(70),
		TotalBrands:        num(50),
		ServiceDaysPerYear: num(365),
	}
}

func snsCategories() []dto.CreateCategoryRequest {
	return []dto.CreateCategoryRequest{
		{Name: "Network & Security", Description: str("Network infrastructure and security solutions")},
		{Name: "Access Control & Attendance Systems", Description: str("Access control and employee attendance management systems")},
		{Name: "Security Surveillance", Description: str("Video surveillance and monitoring systems")},
		{Name: "Structured Cabling Product", Description: str("Structured cabling and network infrastructure products")},
		{Name: "Software & Security", Description: str("Software solutions and security applications")},
		{Name: "Robotic Process Automation (RPA)", Description: str("Automation software and RPA solutions")},
		{Name: "Data Center Product", Description: str("Data center infrastructure and equipment")},
		{Name: "IT Power Products", Description: str("Power management and UPS solutions for IT infrastructure")},
		{Name: "Software Development", Description: str("Custom software development services")},
		{Name: "IT Solutions", Description: str("Complete IT infrastructure solutions")},
		{Name: "IT Services", Description: str("Professional IT services and consulting")},
	}
}

// snsServices usa categoryIDs para enlazar cada servicio; si la categoría no existe queda sin categoría.
func snsServices(categoryIDs map[string]int64) []dto.CreateServiceRequest {
	category := func(name string) *int64 {
		if id, ok := categoryIDs[name]; ok {
			return &id
		}
		return nil
	}
	return []dto.CreateServiceRequest{
		{
			Name: "IT Consultancy",
			Description: str("We partner with our customers to simplify, develop and transform the services supporting their businesses. " +
				"We ensure the best levels of expert advisory and technical knowledge through a deep-set commitment, comprehensive industry expertise."),
			CategoryID: category("IT Services"),
			Features: features("Analysis of existing IT solutions", "Strategy design and roadmap",
				"Performance tracking and optimization", "Future improvements planning"),
		},
		{
			Name:        "IT Management Service",
			Description: str("SNS is Managed IT provider with over 2 years of experience in implementing infrastructure projects and outsourcing IT functions."),
			CategoryID:  category("IT Services"),
			Features: features("Comprehensive managed IT services", "Infrastructure project implementation",
				"IT function outsourcing", "Flexible and customizable solutions"),
		},
		{
			Name:        "Migration Service",
			Description: str("Data Center Migration and IT system migration services without causing data loss."),
			CategoryID:  category("IT Services"),
			Features: features("Data center migration", "Cloud infrastructure migration",
				"Application migration", "Zero data loss guarantee"),
		},
		{
			Name:        "Installation & Configuration Service",
			Description: str("Professional installation and configuration services for IT infrastructure and business systems."),
			CategoryID:  category("IT Services"),
			Features: features("Server setup and configuration", "Network infrastructure installation",
				"System optimization", "Technical support"),
		},
		{
			Name:        "IT Audit",
			Description: str("Comprehensive examination and evaluation of an organization's information technology infrastructure, policies and operations."),
			CategoryID:  category("IT Services"),
			Features: features("IT infrastructure assessment", "Security evaluation",
				"Compliance checking", "Risk assessment"),
		},
		{
			Name:        "Software Development",
			Description: str("Custom software development services for various business needs."),
			CategoryID:  category("Software Development"),
			Features: features("E-commerce Website Development", "POS & Stock Management Software",
				"Inventory Management System", "Hotel Booking System", "Courier Management System",
				"Payroll System", "WordPress Security & Recovery"),
		},
	}
}

func snsSolutions() []dto.CreateSolutionRequest {
	return []dto.CreateSolutionRequest{
		{
			Name: "IT Security",
			Description: str("Today's network architecture is complex and is faced with a threat environment that is always changing " +
				"and attackers that are always trying to find and exploit vulnerabilities."),
			Features: features("NGFW/UTM - Next Generation Firewall solutions",
				"Email Security - Protection against malware, spam and phishing",
				"DLP Solution - Data Loss Prevention for Enterprise & SMBs",
				"Network Security Management", "Vulnerability Assessment"),
		},
		{
			Name: "Networking",
			Description: str("Effective data communications is the key to ensure the reliable dissemination of information. " +
				"Communication solutions depend on highly adaptive and resilient network infrastructure."),
			Features: features("Wi-Fi Solutions - Enterprise wireless networking",
				"Audio/Video Conferencing - Multi-site collaboration tools",
				"IP Telephony Solution - Voice over IP systems",
				"LAN-WAN Networking - Wired and wireless solutions",
				"Network Infrastructure Design"),
		},
		{
			Name:        "Backup & Storage",
			Description: str("Comprehensive backup and storage solutions for data protection and management."),
			Features: features("Enterprise Backup Solutions", "Cloud Storage Integration",
				"Disaster Recovery Planning", "Data Archiving Systems"),
		},
		{
			Name:        "Server & Virtualization",
			Description: str("Server & Virtualization consulting services to achieve high performance, reliability, connectivity and scalability."),
			Features: features("Server Infrastructure Design", "Virtualization Implementation",
				"Storage Solutions", "Performance Optimization", "Scalability Planning"),
		},
		{
			Name:        "Robotic Process Automation (RPA)",
			Description: str("Automation software to end repetitive tasks and make digital transformation a reality."),
			Features: features("Process Automation", "Digital Transformation",
				"Workflow Optimization", "Task Automation", "Efficiency Improvement"),
		},
	}
}

// snsCustomers un registro por logo publicado en el sitio (1.png a 22.png).
func snsCustomers() []dto.CreateCustomerRequest {
	out := make([]dto.CreateCustomerRequest, 0, 22)
	for i := 1; i <= 22; i++ {
		out = append(out, dto.CreateCustomerRequest{
			Name:        fmt.Sprintf("Customer %d", i),
			LogoURL:     str(fmt.Sprintf("https://www.snsbd.com/assets/images/Web/customers/%d.png", i)),
			Description: str(fmt.Sprintf("Valued customer partner %d", i)),
		})
	}
	return out
}
