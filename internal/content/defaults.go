package content

import (
	"time"

	"github.com/hitushen/opscut/internal/models"
)

// DefaultScript 返回内置的六步扫描脚本与固定结果。
func DefaultScript() models.ScanScript {
	return models.ScanScript{
		Steps: []models.ScanStep{
			{Label: "DNS Resolution", Delay: 800 * time.Millisecond, Discovery: "AWS Route 53 detected"},
			{Label: "Infrastructure Discovery", Delay: 1200 * time.Millisecond, Discovery: "12 EC2 instances found"},
			{Label: "Database Analysis", Delay: 1000 * time.Millisecond, Discovery: "3 RDS instances (over-provisioned)"},
			{Label: "Load Balancer Check", Delay: 900 * time.Millisecond, Discovery: "ALB with unused listeners"},
			{Label: "Security Assessment", Delay: 1100 * time.Millisecond, Discovery: "5 security groups need optimization"},
			{Label: "Cost Analysis", Delay: 800 * time.Millisecond, Discovery: "Estimated 68% cost reduction possible"},
		},
		Settle: 500 * time.Millisecond,
		Result: models.ScanResult{
			TotalServers:   12,
			Databases:      3,
			CurrentCost:    15430,
			OptimizedCost:  4629,
			Savings:        10801,
			SavingsPercent: 70,
			Issues: []models.Issue{
				{Type: "Over-provisioned", Count: 8, Severity: models.SeverityHigh},
				{Type: "Unused resources", Count: 5, Severity: models.SeverityMedium},
				{Type: "Security gaps", Count: 3, Severity: models.SeverityHigh},
				{Type: "Inefficient networking", Count: 2, Severity: models.SeverityLow},
			},
		},
	}
}

// DefaultCatalog 返回内置的营销页面内容。
func DefaultCatalog() Catalog {
	return Catalog{
		Hero: HeroPage{
			Badge:    "AI-Powered Cloud Optimization",
			Headline: "Cut Cloud Costs by 70% Instantly",
			Tagline:  "Discover hidden costs in your cloud infrastructure with our AI-powered analysis. Get actionable optimization recommendations in seconds, not weeks.",
			Perks:    []string{"No signup required", "Results in 30 seconds", "100% secure & private"},
			Stats: []Stat{
				{Metric: "70%", Label: "Average Cost Reduction"},
				{Metric: "30s", Label: "Instant Analysis"},
				{Metric: "99.9%", Label: "Uptime Guarantee"},
			},
		},
		Features: FeaturesPage{
			Intro: "OpsCut combines AI-powered analysis, automated optimization, and seamless deployment to transform your cloud infrastructure into a cost-efficient, high-performance environment.",
			Benefits: []Stat{
				{Metric: "50-70%", Label: "Average Cost Reduction", Description: "Typical savings achieved through AI-driven optimization"},
				{Metric: "15 min", Label: "Deployment Time", Description: "From scan to optimized infrastructure deployment"},
				{Metric: "99.9%", Label: "Uptime Guarantee", Description: "Maintained during migration and optimization"},
				{Metric: "24/7", Label: "Continuous Monitoring", Description: "AI-powered monitoring and auto-optimization"},
			},
			Cards: []Card{
				{
					Title:       "Real-time Infrastructure Discovery",
					Description: "Automatically scan and map your entire cloud infrastructure in minutes, not days.",
					Badge:       "AI-Powered",
					Points:      []string{"Multi-cloud support (AWS, Azure, GCP)", "Real-time resource detection", "Dependency mapping", "Security posture analysis"},
				},
				{
					Title:       "Intelligent Cost Optimization",
					Description: "AI-driven recommendations that automatically identify and implement cost savings.",
					Points:      []string{"Right-sizing recommendations", "Unused resource detection", "Reserved instance optimization", "Storage tier optimization"},
				},
				{
					Title:       "Security & Compliance",
					Description: "Ensure your optimized infrastructure maintains the highest security standards.",
					Points:      []string{"Security policy enforcement", "Compliance framework support", "Vulnerability scanning", "Access control optimization"},
				},
				{
					Title:       "Automated Infrastructure as Code",
					Description: "Generate clean, production-ready IaC templates for your optimized infrastructure.",
					Points:      []string{"Terraform generation", "CloudFormation support", "Kubernetes manifests", "Version control integration"},
				},
				{
					Title:       "Advanced Analytics & Monitoring",
					Description: "Comprehensive insights into your infrastructure performance and costs.",
					Points:      []string{"Cost trend analysis", "Performance metrics", "Predictive analytics", "Custom dashboards"},
				},
				{
					Title:       "Seamless Migration & Cutover",
					Description: "Zero-downtime migration to your optimized infrastructure with DNS automation.",
					Points:      []string{"Blue-green deployments", "DNS automation", "Rollback capabilities", "Migration validation"},
				},
			},
		},
		Pricing: PricingPage{
			Intro: "Start saving immediately with our transparent pricing. All plans include a 14-day free trial with no credit card required.",
			Plans: []Plan{
				{
					Name:        "Starter",
					Description: "Perfect for small teams and startups getting started with cloud optimization.",
					Monthly:     99,
					Yearly:      79,
					CTA:         "Start Free Trial",
					Features: []string{
						"Up to 50 cloud resources", "Infrastructure discovery & mapping",
						"Basic cost optimization recommendations", "Monthly reports", "Email support",
						"1 cloud provider", "Basic security scanning",
					},
				},
				{
					Name:        "Professional",
					Description: "Advanced optimization for growing companies with complex infrastructure.",
					Monthly:     299,
					Yearly:      239,
					Badge:       "Most Popular",
					CTA:         "Start Free Trial",
					Popular:     true,
					Features: []string{
						"Up to 500 cloud resources", "Multi-cloud support (AWS, Azure, GCP)",
						"AI-powered optimization recommendations", "Automated cost optimization",
						"Weekly reports & insights", "Infrastructure as Code generation",
						"Priority support (24/7)", "Advanced security & compliance", "Custom dashboards", "API access",
					},
				},
				{
					Name:        "Enterprise",
					Description: "Complete solution for large organizations with mission-critical infrastructure.",
					Monthly:     999,
					Yearly:      799,
					Badge:       "Best Value",
					CTA:         "Contact Sales",
					Enterprise:  true,
					Features: []string{
						"Unlimited cloud resources", "All cloud providers supported",
						"Real-time optimization & monitoring", "Automated infrastructure deployment",
						"Custom migration strategies", "Dedicated success manager", "SLA guarantees",
						"Advanced compliance frameworks", "White-label options", "Custom integrations",
						"On-premises deployment options",
					},
				},
			},
			EnterpriseFeatures: []Blurb{
				{Title: "Dedicated Support", Description: "24/7 dedicated support team with guaranteed response times"},
				{Title: "Custom Integrations", Description: "Seamlessly integrate with your existing tools and workflows"},
				{Title: "SLA Guarantees", Description: "99.9% uptime SLA with performance guarantees"},
				{Title: "Advanced Compliance", Description: "HIPAA, PCI DSS, SOX, and custom compliance frameworks"},
			},
			FAQ: []FAQ{
				{Question: "How does the free trial work?", Answer: "Get full access to all features for 14 days. No credit card required. Cancel anytime during the trial period."},
				{Question: "Can I change plans anytime?", Answer: "Yes, you can upgrade or downgrade your plan at any time. Changes take effect immediately with prorated billing."},
				{Question: "What's included in support?", Answer: "All plans include comprehensive documentation, video tutorials, and access to our community. Higher tiers include priority support."},
				{Question: "Is my data secure?", Answer: "Absolutely. We're SOC 2 Type II certified with end-to-end encryption. Your infrastructure data never leaves your secure environment."},
			},
		},
		Resources: ResourcesPage{
			Featured: []Resource{
				{Title: "Complete Guide to Cloud Cost Optimization", Description: "Learn proven strategies to reduce your cloud costs by 50-70% without compromising performance.", Type: "Guide", ReadTime: "15 min read", Date: "Dec 2024", Featured: true},
				{Title: "Infrastructure as Code Best Practices", Description: "Master the art of IaC with our comprehensive video series covering Terraform, CloudFormation, and more.", Type: "Video Series", ReadTime: "2 hours", Date: "Nov 2024"},
				{Title: "Multi-Cloud Migration Strategies", Description: "Step-by-step playbook for migrating workloads across cloud providers with zero downtime.", Type: "Whitepaper", ReadTime: "20 min read", Date: "Dec 2024"},
			},
			Docs: []DocSection{
				{Title: "API Documentation", Description: "Comprehensive API reference with examples and SDKs", Items: []string{"REST API Reference", "Python SDK", "Node.js SDK", "CLI Tools"}},
				{Title: "Getting Started", Description: "Quick start guides and tutorials for new users", Items: []string{"5-minute Quickstart", "Platform Overview", "First Scan Tutorial", "Dashboard Guide"}},
				{Title: "Security & Compliance", Description: "Security documentation and compliance frameworks", Items: []string{"Security Overview", "SOC 2 Report", "GDPR Compliance", "Data Protection"}},
				{Title: "Best Practices", Description: "Industry best practices and optimization tips", Items: []string{"Cost Optimization", "Security Hardening", "Performance Tuning", "Migration Strategies"}},
			},
			CaseStudies: []CaseStudy{
				{Company: "TechCorp", Industry: "SaaS", Savings: "$2.4M annually", Description: "Reduced AWS costs by 65% while improving performance and security posture."},
				{Company: "FinanceFlow", Industry: "Fintech", Savings: "$890K annually", Description: "Multi-cloud optimization across AWS and Azure with automated compliance."},
				{Company: "HealthTech Inc", Industry: "Healthcare", Savings: "$1.2M annually", Description: "HIPAA-compliant infrastructure optimization with 99.99% uptime maintained."},
			},
			Community: []Stat{
				{Metric: "15K+", Label: "Community Members"},
				{Metric: "500+", Label: "Published Resources"},
				{Metric: "24/7", Label: "Community Support"},
				{Metric: "98%", Label: "Satisfaction Rate"},
			},
		},
		Enterprise: EnterprisePage{
			Features: []Card{
				{Title: "Enterprise Security", Description: "Advanced security controls with SOC 2, HIPAA, and custom compliance frameworks.", Points: []string{"Single Sign-On (SSO) integration", "Advanced audit logging", "Custom security policies", "End-to-end encryption"}},
				{Title: "Dedicated Support", Description: "24/7 priority support with dedicated customer success managers and SLA guarantees.", Points: []string{"Dedicated customer success manager", "Priority support queue", "99.9% uptime SLA", "Custom training programs"}},
				{Title: "Custom Integrations", Description: "Seamlessly integrate with your existing enterprise tools and workflows.", Points: []string{"Custom API integrations", "Webhook support", "ITSM tool integration", "CI/CD pipeline integration"}},
				{Title: "Private Cloud Deployment", Description: "Deploy OpsCut in your own environment with complete data sovereignty.", Points: []string{"On-premises deployment", "Private cloud hosting", "Air-gapped environments", "Custom data residency"}},
			},
			UseCases: []UseCase{
				{
					Industry:   "Financial Services",
					Challenges: []string{"Regulatory compliance requirements", "High availability demands", "Data sovereignty concerns", "Cost optimization at scale"},
					Solutions:  []string{"GDPR & SOX compliance automation", "99.99% uptime SLA", "Regional data residency", "Automated cost governance"},
				},
				{
					Industry:   "Healthcare",
					Challenges: []string{"HIPAA compliance requirements", "Patient data protection", "Legacy system integration", "Cost containment pressures"},
					Solutions:  []string{"HIPAA-compliant infrastructure", "Advanced encryption & access controls", "Seamless legacy integration", "Transparent cost reporting"},
				},
				{
					Industry:   "Government",
					Challenges: []string{"FedRAMP compliance", "Air-gapped environments", "Budget constraints", "Legacy modernization"},
					Solutions:  []string{"FedRAMP authorized platform", "On-premises deployment options", "Cost optimization frameworks", "Migration planning & execution"},
				},
			},
			SupportTiers: []SupportTier{
				{Title: "Standard Enterprise", Features: []string{"24/7 email & chat support", "4-hour response time", "Monthly business reviews", "Standard onboarding"}},
				{Title: "Premium Enterprise", Features: []string{"24/7 phone support", "1-hour response time", "Weekly optimization reviews", "White-glove onboarding"}},
				{Title: "Enterprise Plus", Features: []string{"Dedicated success manager", "15-minute response time", "Real-time optimization alerts", "Custom implementation"}},
			},
			Stats: []Stat{
				{Metric: "500+", Label: "Enterprise Customers"},
				{Metric: "$50M+", Label: "Total Customer Savings"},
				{Metric: "99.99%", Label: "Enterprise SLA Uptime"},
				{Metric: "30 days", Label: "Average Implementation"},
			},
		},
		Results: ResultsPage{
			Resources: []ResourceRow{
				{Name: "EC2 Instances", Current: 12, Optimized: 6},
				{Name: "RDS Databases", Current: 3, Optimized: 2},
				{Name: "Load Balancers", Current: 4, Optimized: 2},
				{Name: "Storage (TB)", Current: 15, Optimized: 8},
			},
			Benefits: []string{"Automated infrastructure replication", "Zero-downtime migration", "24/7 AI monitoring"},
		},
		Premium: PremiumPage{
			Migration: []MigrationStep{
				{Step: "Infrastructure Analysis", Status: "completed", Time: "2 min"},
				{Step: "Resource Replication", Status: "completed", Time: "15 min"},
				{Step: "Testing & Validation", Status: "in-progress", Time: "5 min", Progress: 65},
				{Step: "DNS Migration", Status: "pending", Time: "1 min"},
				{Step: "Cleanup & Optimization", Status: "pending", Time: "3 min"},
			},
			Savings: []SavingsPoint{
				{Month: "Jan", Current: 15430, Optimized: 4629},
				{Month: "Feb", Current: 16200, Optimized: 4850},
				{Month: "Mar", Current: 15800, Optimized: 4740},
				{Month: "Apr", Current: 17100, Optimized: 5130},
				{Month: "May", Current: 16500, Optimized: 4950},
				{Month: "Jun", Current: 15900, Optimized: 4770},
			},
			DevOps: []DevOpsPoint{
				{Time: "00:00", Incidents: 12, Automated: 3},
				{Time: "04:00", Incidents: 8, Automated: 7},
				{Time: "08:00", Incidents: 15, Automated: 12},
				{Time: "12:00", Incidents: 6, Automated: 18},
				{Time: "16:00", Incidents: 9, Automated: 22},
				{Time: "20:00", Incidents: 4, Automated: 25},
			},
		},
		Dashboard: DashboardPage{
			Metrics: []Stat{
				{Metric: "$10,801", Label: "Monthly Savings", Description: "+12% from last month"},
				{Metric: "13", Label: "Active Resources", Description: "46% reduction achieved"},
				{Metric: "98/100", Label: "Security Score", Description: "Excellent rating"},
				{Metric: "99.99%", Label: "Uptime", Description: "Last 30 days"},
			},
			Performance: []PerformancePoint{
				{Time: "00:00", CPU: 45, Memory: 62, Network: 23},
				{Time: "04:00", CPU: 32, Memory: 58, Network: 19},
				{Time: "08:00", CPU: 78, Memory: 71, Network: 45},
				{Time: "12:00", CPU: 65, Memory: 69, Network: 38},
				{Time: "16:00", CPU: 52, Memory: 64, Network: 28},
				{Time: "20:00", CPU: 41, Memory: 60, Network: 22},
			},
			CostBreakdown: []CostSlice{
				{Name: "Compute", Value: 2100, Color: "#8b5cf6"},
				{Name: "Storage", Value: 850, Color: "#10b981"},
				{Name: "Networking", Value: 420, Color: "#ea580c"},
				{Name: "Database", Value: 1259, Color: "#f97316"},
			},
			Components: []Component{
				{Name: "Web Servers", Count: 6, Status: "healthy", Utilization: 65},
				{Name: "Database Servers", Count: 2, Status: "optimized", Utilization: 45},
				{Name: "Load Balancers", Count: 2, Status: "healthy", Utilization: 30},
				{Name: "Cache Servers", Count: 3, Status: "healthy", Utilization: 55},
			},
			Optimizations: []Optimization{
				{Action: "Downscaled EC2 instances", Savings: "$1,200", Time: "2 hours ago"},
				{Action: "Optimized RDS storage", Savings: "$380", Time: "5 hours ago"},
				{Action: "Cleaned unused EBS volumes", Savings: "$150", Time: "1 day ago"},
				{Action: "Rightsized load balancers", Savings: "$280", Time: "2 days ago"},
			},
			Settings: []Setting{
				{Name: "CPU-based scaling", Enabled: true},
				{Name: "Storage optimization", Enabled: true},
				{Name: "Cost anomaly detection", Enabled: true},
			},
			Next: Blurb{Title: "Database rightsizing", Description: "Estimated savings: $420/month"},
		},
		Footer: Footer{
			Sections: []FooterSection{
				{Title: "Platform", Links: []Link{
					{Label: "Features", View: models.ViewFeatures},
					{Label: "Pricing", View: models.ViewPricing},
					{Label: "Enterprise", View: models.ViewEnterprise},
					{Label: "API Documentation"},
				}},
				{Title: "Resources", Links: []Link{
					{Label: "Documentation", View: models.ViewResources},
					{Label: "Help Center"}, {Label: "Community"}, {Label: "Blog"},
				}},
				{Title: "Company", Links: []Link{
					{Label: "About Us"}, {Label: "Careers"}, {Label: "Contact"}, {Label: "Press Kit"},
				}},
				{Title: "Legal", Links: []Link{
					{Label: "Privacy Policy"}, {Label: "Terms of Service"}, {Label: "Security"}, {Label: "Compliance"},
				}},
			},
			Certifications: []string{"SOC 2 Type II", "ISO 27001", "GDPR Compliant"},
		},
	}
}
