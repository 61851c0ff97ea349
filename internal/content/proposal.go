package content

import (
	"time"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// Proposal is the client-facing proposal document: centered page
// footer, 0.85/0.95 inch margins, a value summary table, eleven
// feature blocks, and an implementation phase table.
func Proposal(date time.Time) compose.Plan {
	return compose.Plan{
		Title:        SystemName,
		Subtitle:     "Client Proposal",
		TitleSizePts: 30,
		Meta: []compose.MetaLine{
			{Text: "Version: " + Version, Bold: true},
			{Text: "Date: " + date.Format("2006-01-02")},
			{Text: "Prepared for: ________________________________"},
			{Text: "Prepared by: ________________________________"},
		},
		HeaderText: SystemName,
		Footer:     compose.FooterCentered,
		Margins: docmodel.Margins{
			Top:    docmodel.Twips(0.85),
			Bottom: docmodel.Twips(0.85),
			Left:   docmodel.Twips(0.95),
			Right:  docmodel.Twips(0.95),
		},
		FileName: "Inventory_Management_System_Client_Proposal.docx",
		Date:     date,
		Sections: proposalSections(),
	}
}

func proposalSections() []compose.SectionPlan {
	return []compose.SectionPlan{
		{Title: "SECTION 1 — Executive Summary", Body: proposalExecutiveSummary},
		{Title: "SECTION 2 — Business Challenges We Solve", Body: proposalChallenges},
		{Title: "SECTION 3 — System Overview", Body: proposalOverview},
		{Title: "SECTION 4 — Core Features", Body: proposalCoreFeatures},
		{Title: "SECTION 5 — Role-Based Access & Governance", Body: proposalGovernance},
		{Title: "SECTION 6 — Operational Workflows (Client-Friendly)", Body: proposalWorkflows},
		{Title: "SECTION 7 — Financial Control & Costing", Body: proposalCosting},
		{Title: "SECTION 8 — Forecasting & Intelligence", Body: proposalForecasting},
		{Title: "SECTION 9 — Compliance & Audit", Body: proposalCompliance},
		{Title: "SECTION 10 — Scalability & Architecture (High-Level)", Body: proposalArchitecture},
		{Title: "SECTION 11 — Implementation Approach", Body: proposalImplementation},
		{Title: "SECTION 12 — Why This System", Body: proposalWhy},
		{Title: "SECTION 13 — Future Roadmap (Optional Add-On)", Body: proposalRoadmap},
		{Title: "SECTION 14 — Conclusion", Body: proposalConclusion},
	}
}

func proposalExecutiveSummary(b *docmodel.Builder) {
	b.Paragraph("The Inventory Management System is an enterprise-ready platform for controlling inventory operations across multiple warehouses with strong governance, auditability, and performance. " +
		"It is designed to reduce operational risk, improve stock accuracy, and enable predictable supply planning—without adding complexity for frontline users.")

	b.Heading("What the system is", 2)
	b.Bullet("A modern web-based inventory and stock control platform for multi-site operations.")
	b.Bullet("A single source of truth for on-hand stock, movements, approvals, and reporting.")
	b.Bullet("A scalable foundation for integrations and future automation.")

	b.Heading("Who it is designed for", 2)
	b.Bullet("Warehousing and inventory operations teams")
	b.Bullet("Procurement and supply planning")
	b.Bullet("Sales operations needing reliable availability")
	b.Bullet("Finance and leadership requiring consistent costing visibility")
	b.Bullet("Compliance and audit stakeholders")

	b.Heading("Key value proposition", 2)
	b.Bullet("Higher stock accuracy with controlled execution and full traceability.")
	b.Bullet("Fewer preventable losses through approval safeguards and user accountability.")
	b.Bullet("Faster daily operations through barcode-enabled workflows and efficient lookup.")
	b.Bullet("Smarter replenishment decisions through forecasting and reorder intelligence.")

	b.Heading("Enterprise readiness", 2)
	b.Bullet("Permission-based access control and customizable roles.")
	b.Bullet("Optional approvals for high-impact actions and sensitive workflows.")
	b.Bullet("Audit logs designed for accountability and compliance reporting.")
	b.Bullet("Performance-aware design suitable for growing catalogs and multi-warehouse environments.")

	b.Heading("Competitive positioning", 2)
	b.Bullet("Balances ease of use for operators with governance controls demanded by enterprises.")
	b.Bullet("Built around accuracy, auditability, and predictable planning—not spreadsheets and guesswork.")
	b.Bullet("Designed to scale from a few warehouses to large multi-site operations.")

	b.Heading("What success looks like (first 90 days)", 2)
	b.Bullet("Users execute standardized receiving, sales confirmation, transfers, and adjustments with minimal training.")
	b.Bullet("Stock accuracy improves and reconciliation effort drops measurably.")
	b.Bullet("Approval workflows are in place for sensitive operations and exceptions are clearly visible.")
	b.Bullet("Low-stock risk and reorder suggestions support proactive procurement.")
	b.Bullet("Leadership gains trusted reporting for operational and financial decision-making.")

	b.Heading("At-a-glance outcomes", 2)
	valueSummaryTable(b)
}

// valueSummaryTable is the fixed four-column outcome summary shown in
// the executive section.
func valueSummaryTable(b *docmodel.Builder) {
	b.Table(
		[]string{"Outcome", "What clients get", "Who benefits", "Why it matters"},
		[][]string{
			{"Stock accuracy", "A ledger-based inventory engine with controlled execution", "Warehouse, operations, finance", "Reduces stock discrepancies and write-offs"},
			{"Governance", "Role-based access and optional approvals before execution", "Management, compliance", "Prevents unauthorized or accidental stock changes"},
			{"Speed at the floor", "Barcode/QR scan & lookup for fast identification", "Warehouse teams", "Faster receiving/picking and fewer manual entry errors"},
			{"Financial control", "FIFO/Average costing and margin visibility (where enabled)", "Finance, leadership", "Improves decision-making with consistent inventory value"},
			{"Planning", "Smart reorder suggestions and stockout prediction", "Operations, procurement", "Supports service levels and business continuity"},
			{"Transparency", "Audit logging and traceability", "Auditors, management", "Creates accountability and supports compliance"},
		},
	)
}

func proposalChallenges(b *docmodel.Builder) {
	b.Heading("Manual stock errors", 2)
	b.Paragraph("Manual updates, disconnected spreadsheets, and inconsistent processes create a predictable pattern: stock counts drift, availability becomes unreliable, and teams spend time reconciling instead of operating.")
	b.Bullet("Reduce data entry errors by standardizing workflows and adding scan support.")
	b.Bullet("Increase confidence in availability across teams and warehouses.")
	b.Bullet("Improve training outcomes with consistent steps and fewer ad-hoc workarounds.")
	b.Bullet("Reduce dependence on a few ‘power users’ who hold process knowledge.")

	b.Heading("Lack of approval control", 2)
	b.Paragraph("Enterprises need controls that prevent accidental or unauthorized stock changes—especially for high-value, regulated, or high-volume items. " +
		"Approvals create a clear governance layer without slowing everyday work.")
	b.Bullet("Add decision checkpoints for sensitive actions without blocking normal flow.")
	b.Bullet("Ensure actions are reviewed and executed consistently.")
	b.Bullet("Support segregation of duties (request vs approve) where required.")
	b.Bullet("Create a predictable, auditable record of review and outcome.")

	b.Heading("Inaccurate costing", 2)
	b.Paragraph("When costing is inconsistent or opaque, organizations lose margin visibility and cannot trust financial reports. " +
		"The system supports structured costing approaches that align inventory value with operational reality.")
	b.Bullet("Improve confidence in inventory value and cost visibility (where enabled).")
	b.Bullet("Reduce manual spreadsheet reconciliations and month-end surprises.")

	b.Heading("No forecasting", 2)
	b.Paragraph("Stockouts and overstock are two sides of the same problem: lack of planning intelligence. " +
		"Forecasting and reorder suggestions help organizations maintain service levels while controlling working capital.")
	b.Bullet("Support proactive replenishment instead of reactive expediting.")
	b.Bullet("Reduce overstock by aligning reorder decisions with usage patterns.")

	b.Heading("Poor audit visibility", 2)
	b.Paragraph("Without traceability, it becomes hard to understand what changed, who changed it, and why. " +
		"Audit visibility is a core requirement for many enterprise clients and regulated environments.")
	b.Bullet("Strengthen accountability by linking actions to users and context.")
	b.Bullet("Accelerate investigations and exception management.")

	b.Heading("Multi-warehouse complexity", 2)
	b.Paragraph("As organizations grow, inventory stops being a single-location problem. Transfers, warehouse-level availability, and controlled movement become essential for accurate operations and customer commitments.")
	b.Bullet("Improve warehouse-to-warehouse coordination and visibility.")
	b.Bullet("Reduce mis-shipments and misallocation across sites.")

	b.Heading("Lack of barcode efficiency", 2)
	b.Paragraph("Barcode and QR workflows reduce picking/receiving time, improve accuracy, and make training easier. " +
		"The system supports quick scan/lookup patterns for warehouse execution.")
	b.Bullet("Increase throughput while reducing errors in receiving and picking.")
	b.Bullet("Make item identification faster across products, batches, and serial-tracked items.")
}

func proposalOverview(b *docmodel.Builder) {
	b.Paragraph("This section provides a high-level overview of the system’s capabilities. It focuses on business outcomes and operational value, rather than internal implementation details.")

	b.Heading("Where this system fits best", 2)
	b.Bullet("Distribution and logistics operations that need reliable multi-warehouse execution.")
	b.Bullet("Retail and wholesale teams with growing catalogs and replenishment needs.")
	b.Bullet("Manufacturing support inventory where traceability and controlled adjustments matter.")
	b.Bullet("Regulated or high-value inventory requiring batch/serial tracking and audit trails.")
	b.Bullet("Organizations transitioning away from spreadsheet-driven inventory control.")

	b.Heading("Inventory engine", 2)
	b.Bullet("Designed for accuracy: inventory changes follow controlled workflows.")
	b.Bullet("Built for traceability: every meaningful action can be audited.")
	b.Bullet("Supports high throughput operations without sacrificing governance.")

	b.Heading("Multi-warehouse support", 2)
	b.Bullet("Warehouse-level availability with clear movement history.")
	b.Bullet("Transfers that preserve accountability across sites.")
	b.Bullet("Consistent reporting across the network.")

	b.Heading("Real-time stock tracking", 2)
	b.Bullet("Up-to-date availability after receiving, sales confirmation, adjustments, and transfers.")
	b.Bullet("Operational confidence for teams relying on accurate stock positions.")

	b.Heading("Approval workflows", 2)
	b.Bullet("Optional governance for high-impact actions.")
	b.Bullet("Reviewer model: request → review → approve/reject → execution.")
	b.Bullet("Idempotent execution: prevents duplicate execution from repeated actions.")

	b.Heading("Valuation & costing", 2)
	b.Bullet("Supports standard costing approaches used by enterprise clients.")
	b.Bullet("Improves margin visibility and financial controls (where enabled).")

	b.Heading("Smart reorder system", 2)
	b.Bullet("Suggested reorder quantities based on usage and policies.")
	b.Bullet("Stockout prediction to protect service levels.")
	b.Bullet("Operational continuity: reduce urgent buying and exceptions.")

	b.Heading("Barcode & scanning support", 2)
	b.Bullet("Scan/lookup to quickly identify products, batches, and serial items.")
	b.Bullet("Supports both handheld/camera scanning and USB scanners.")
}

func proposalCoreFeatures(b *docmodel.Builder) {
	b.Paragraph("Core features are organized for enterprise buyers: each capability includes business benefit, operational benefit, and risk mitigation benefit.")
	b.Paragraph("For each feature below, we describe the practical capability, the value it delivers, and the controls that make it suitable for enterprise operations. " +
		"This format supports executive stakeholders as well as operational leaders evaluating fit for rollout.")

	for _, f := range proposalFeatures() {
		b.FeatureBlock(f)
	}
}

func proposalFeatures() []docmodel.FeatureSpec {
	return []docmodel.FeatureSpec{
		{
			Title: "1) Inventory Management",
			Overview: "Maintain a reliable inventory position by standardizing how stock is received, confirmed, corrected, and transferred. " +
				"The system is designed so everyday operations stay fast for users while management retains control and visibility.",
			Capabilities: []string{
				"Centralized product catalog with consistent attributes and operational settings",
				"Warehouse-level availability visibility for daily execution",
				"Controlled stock-impacting actions aligned to operational reality",
				"Clear references and context for stock-impacting events (e.g., receiving and confirmation)",
				"Role-based visibility so stakeholders see what they need without broad access",
			},
			BusinessBenefit:    "Improve stock accuracy and reduce reconciliation time, enabling better service levels and customer trust.",
			OperationalBenefit: "Streamline day-to-day receiving, confirming sales, and visibility of availability by location.",
			RiskBenefit:        "Reduce losses from uncontrolled changes and improve traceability for investigations and audits.",
			OperationalNotes: []string{
				"Designed for frontline speed with standardized steps and clear fields",
				"Balances visibility needs across operations, procurement, sales, and management",
				"Supports governance requirements without forcing unnecessary steps for low-risk actions",
				"Provides consistent definitions for stock changes (receiving, sale confirmation, adjustment, transfer)",
				"Enables clean handoffs between teams through shared references and history",
			},
			KPIs: []string{
				"Reduction in inventory discrepancy rate (cycle count variance)",
				"Reduction in reconciliation effort (hours per week/month)",
				"Improved fulfillment accuracy (mis-shipments tied to inventory errors)",
				"Improved availability confidence (fewer stock-related backorders)",
				"Faster onboarding time for new warehouse users",
			},
			Outcomes: []string{
				"Fewer inventory discrepancies and faster issue resolution",
				"Less time spent reconciling spreadsheets across teams",
				"More reliable availability information for operations and sales",
			},
			ExampleSteps: []string{
				"Warehouse staff receives goods and records quantities against a warehouse location.",
				"If batch/serial applies, details are captured during the receiving process.",
				"Inventory becomes available for downstream processes and reporting.",
			},
		},
		{
			Title: "2) Multi-Warehouse Operations",
			Overview: "Operate multiple sites with clear warehouse-level accountability. The system supports visibility by site, structured transfers, " +
				"and reporting that helps leadership understand inventory distribution and constraints.",
			Capabilities: []string{
				"Warehouse master data and consistent operational definitions",
				"Availability and movement visibility by warehouse",
				"Controlled transfers that preserve accountability",
				"Site-to-site traceability for investigations and performance review",
				"Support for growing the warehouse network without process breakdown",
			},
			BusinessBenefit:    "Support growth across sites without losing control of inventory and fulfillment performance.",
			OperationalBenefit: "Track availability and movements by warehouse; execute controlled transfers.",
			RiskBenefit:        "Reduce mis-shipments and location confusion; maintain clear movement history.",
			OperationalNotes: []string{
				"Warehouse-to-warehouse visibility reduces dependency on informal communication",
				"Transfers create accountability for both the sending and receiving locations",
				"Supports standardized naming and reporting across new sites",
				"Enables operational planning by understanding where inventory actually sits",
				"Designed to handle growth in transaction volume without sacrificing traceability",
			},
			KPIs: []string{
				"Reduction in transfer-related discrepancies",
				"Improved warehouse-level stock accuracy",
				"Reduction in emergency transfers and last-minute reallocations",
				"Improved service level by correct inventory positioning",
				"Faster resolution of cross-warehouse issues",
			},
			Outcomes: []string{
				"Fewer site-level surprises and more predictable fulfillment performance",
				"Improved decision-making for where to position stock",
				"Clear accountability for transfers and warehouse-level inventory health",
			},
			ExampleSteps: []string{
				"A manager identifies imbalance: Warehouse A is overstocked; Warehouse B is at risk of stockout.",
				"A transfer is created to move the required quantity from A to B.",
				"Both warehouses show the movement history and updated availability.",
			},
		},
		{
			Title: "3) Purchase & Sales Management",
			Overview: "Purchases and sales are aligned with how enterprises operate: inventory impact happens at the correct operational moment. " +
				"This reduces confusion and ensures reporting reflects real execution.",
			Capabilities: []string{
				"Receiving increases stock when goods are confirmed as received",
				"Sales reduce stock when a sale is confirmed/executed (or after approval when required)",
				"Reference numbers and context for operational traceability",
				"Warehouse-level execution aligned to fulfillment reality",
				"Improved reporting clarity across purchase and sales activity",
			},
			BusinessBenefit:    "Better order fulfillment reliability with dependable availability; fewer surprises for sales operations.",
			OperationalBenefit: "Receiving increases stock; confirming sales decreases stock with clear reference tracking.",
			RiskBenefit:        "Avoid premature stock impacts; reduce errors caused by partial or unverified events.",
			OperationalNotes: []string{
				"Separates ‘planned’ events from ‘executed’ events to avoid confusion in reporting",
				"Supports clean handoffs between receiving teams and downstream fulfillment",
				"Improves alignment between sales commitments and actual availability",
				"Provides consistent references for dispute resolution and exception analysis",
				"Supports optional approvals where enterprise governance requires review",
			},
			KPIs: []string{
				"Reduction in stock-related order exceptions",
				"Improved on-time fulfillment due to accurate availability signals",
				"Reduction in manual corrections caused by early/incorrect stock impacts",
				"Improved accuracy of sales and receiving reporting timelines",
				"Reduction in customer escalations tied to inventory mismatch",
			},
			Outcomes: []string{
				"Reduced disputes between operations and sales on availability",
				"Clearer operational reporting and better customer commitments",
				"Lower exception rate caused by early or incorrect stock updates",
			},
			ExampleSteps: []string{
				"Goods arrive and are received into a warehouse with validated quantities.",
				"A sale is confirmed when it is ready to be executed and shipped/fulfilled.",
				"Reports reflect true receiving and true sales execution timing.",
			},
		},
		{
			Title: "4) Stock Adjustments & Transfers",
			Overview: "Adjustments and transfers handle real-world exceptions: damage, cycle count corrections, and redistribution of stock. " +
				"The system makes these events visible and auditable, protecting enterprises from silent drift.",
			Capabilities: []string{
				"Controlled stock adjustments with reasons and accountability",
				"Transfers between warehouses with end-to-end traceability",
				"Visibility into exception patterns for continuous improvement",
				"Policy controls to prevent high-risk actions without review",
				"Consistent reporting of corrections and movements",
			},
			BusinessBenefit:    "Reduce shrinkage impact by quickly correcting inventory and keeping operations stable.",
			OperationalBenefit: "Standardized adjustment and transfer workflows with consistent reporting.",
			RiskBenefit:        "Minimize unauthorized edits; ensure transfers are fully accounted for on both sides.",
			OperationalNotes: []string{
				"Adjustments are treated as controlled exceptions, not silent edits",
				"Transfers maintain end-to-end accountability and visible history",
				"Supports process improvement by surfacing exception patterns over time",
				"Helps leadership separate operational variance from governance issues",
				"Designed to support high-volume operations with clear oversight",
			},
			KPIs: []string{
				"Reduction in unexplained adjustment volume (trend over time)",
				"Time-to-resolution for stock discrepancies",
				"Reduction in negative events (e.g., missing stock during fulfillment)",
				"Improved audit readiness for correction activity",
				"Improved accuracy of transfer execution between warehouses",
			},
			Outcomes: []string{
				"Improved cycle count accuracy and faster correction handling",
				"Fewer unexplained variances at month-end",
				"Clear visibility into shrinkage and operational exceptions",
			},
			ExampleSteps: []string{
				"A cycle count reveals an overage/shortage for an item in a warehouse location.",
				"A controlled adjustment is recorded with a reason (e.g., count correction, damage).",
				"Managers can review patterns and take corrective process actions.",
			},
		},
		{
			Title: "5) Batch & Serial Tracking",
			Overview: "For regulated, high-value, or expiry-sensitive inventory, batch and serial tracking enable deep traceability. " +
				"This supports compliance, recall readiness, and stronger customer confidence.",
			Capabilities: []string{
				"Batch visibility for expiry or lot-controlled items",
				"Serial tracking for unique items requiring individual traceability",
				"Warehouse-level traceability for movement and status changes",
				"Faster investigations during issues or customer inquiries",
				"Reduced risk of shipping incorrect or non-compliant stock",
			},
			BusinessBenefit:    "Enable traceability that supports compliance, recall readiness, and customer requirements.",
			OperationalBenefit: "Track inventory at batch and serial level where needed; maintain visibility across warehouses.",
			RiskBenefit:        "Reduce the risk of shipping wrong items; support investigations with precise traceability.",
			OperationalNotes: []string{
				"Supports organizations with traceability obligations (expiry, lot control, regulated goods)",
				"Improves customer confidence through more precise inventory answers",
				"Enables faster issue handling when exceptions arise (returns, damage, recalls)",
				"Reduces training complexity by embedding traceability into standard workflows",
				"Maintains warehouse-level visibility so operations stay predictable",
			},
			KPIs: []string{
				"Reduction in traceability-related fulfillment errors",
				"Time-to-answer for customer traceability inquiries",
				"Reduction in expiry-related losses (where applicable)",
				"Improved compliance readiness (audit response time)",
				"Reduction in manual traceability spreadsheets or side systems",
			},
			Outcomes: []string{
				"Stronger compliance posture for batch/serial-sensitive products",
				"Reduced customer escalations through faster traceability answers",
				"More controlled handling of expiry and regulated inventory",
			},
			ExampleSteps: []string{
				"Receiving captures batch information (and serials where required).",
				"Operations can locate the correct batch/serial stock for fulfillment.",
				"Audit trails support recall readiness and investigations if needed.",
			},
		},
		{
			Title: "6) Financial Valuation (FIFO/Average)",
			Overview: "Enterprises need inventory costing approaches that align with governance and reporting. " +
				"The system supports structured valuation methods and improves financial visibility where enabled.",
			Capabilities: []string{
				"Support for FIFO and average costing approaches",
				"Consistent cost handling to reduce reporting friction",
				"Improved visibility into cost and margin signals (where enabled)",
				"Clear auditability of valuation-related outcomes",
				"Controls to restrict financial visibility based on role/permission",
			},
			BusinessBenefit:    "Improve margin visibility and financial planning with standardized costing.",
			OperationalBenefit: "Consistent cost handling reduces downstream reporting friction and rework.",
			RiskBenefit:        "Reduce disputes and audit risk by applying consistent costing logic.",
			OperationalNotes: []string{
				"Supports finance stakeholders with consistent valuation visibility (where enabled)",
				"Reduces reliance on manual costing spreadsheets and ad-hoc adjustments",
				"Supports governance by restricting financial visibility when required",
				"Aligns operational execution with financial outcomes and accountability",
				"Improves consistency across warehouses and product categories",
			},
			KPIs: []string{
				"Reduction in manual financial reconciliation effort",
				"Improved margin reporting consistency over time",
				"Reduction in valuation disputes or corrections",
				"Improved timeliness of financial reporting related to inventory",
				"Reduction in cost anomalies flagged by leadership",
			},
			Outcomes: []string{
				"More reliable inventory valuation visibility for finance stakeholders",
				"Reduced manual adjustments and reconciliation effort",
				"Improved decision-making for pricing and procurement",
			},
			ExampleSteps: []string{
				"A client selects FIFO or average costing based on their reporting requirements.",
				"As sales are executed, cost-of-goods visibility aligns with the configured method.",
				"Leadership uses consistent signals for margin and financial performance review.",
			},
		},
		{
			Title: "7) Smart Reorder & Forecasting",
			Overview: "The system provides practical replenishment guidance: low stock signals, suggested reorder quantities, and stockout prediction. " +
				"This improves service levels and reduces expensive reactive procurement.",
			Capabilities: []string{
				"Low stock visibility and prioritized replenishment signals",
				"Suggested reorder quantities aligned to usage and policy",
				"Stockout risk prediction to protect service levels",
				"Warehouse-level planning visibility",
				"Support for ongoing tuning as the business learns and scales",
			},
			BusinessBenefit:    "Support continuity and service levels; reduce emergency buying and expedite costs.",
			OperationalBenefit: "Surface low stock, suggested reorder quantities, and predicted stockout signals.",
			RiskBenefit:        "Reduce operational disruption from stockouts and reduce cash tied in excess inventory.",
			OperationalNotes: []string{
				"Designed for practical planning: alerts and suggestions are action-oriented",
				"Supports warehouse-level planning rather than one-size-fits-all replenishment",
				"Encourages policy-driven replenishment (lead time, safety stock, min/max levels)",
				"Helps leadership balance working capital with service levels",
				"Enables ongoing tuning as demand patterns evolve",
			},
			KPIs: []string{
				"Reduction in stockout incidents on priority items",
				"Improved fill rate / service level",
				"Reduction in expediting and urgent procurement costs",
				"Reduction in excess inventory on slow-moving items",
				"Improved planning cycle time (time spent deciding what to reorder)",
			},
			Outcomes: []string{
				"Higher fill rates and fewer urgent procurement events",
				"Lower overstock on slow-moving items and improved working capital",
				"More predictable operations across warehouses",
			},
			ExampleSteps: []string{
				"A planner reviews low stock and predicted stockout risk by warehouse.",
				"The system provides a suggested reorder quantity aligned to policy.",
				"Procurement prioritizes actions based on service level risk and business importance.",
			},
		},
		{
			Title: "8) Approval Workflow Engine",
			Overview: "Approvals add governance for enterprises that require control over sensitive workflows. " +
				"Rather than blocking operations, the system routes actions to review when needed and executes them once approved.",
			Capabilities: []string{
				"Configurable approval policies for key workflows",
				"Clear request lifecycle: pending → approved/rejected",
				"Reviewer accountability and decision tracking",
				"Execution safeguards to prevent double execution",
				"Visibility into pending work to prevent operational bottlenecks",
			},
			BusinessBenefit:    "Strengthen controls and reduce costly mistakes in high-volume operations.",
			OperationalBenefit: "Request/review/approve execution model keeps teams aligned and accountable.",
			RiskBenefit:        "Prevents unauthorized actions; ensures sensitive workflows are reviewed and traceable.",
			OperationalNotes: []string{
				"Supports segregation of duties and enterprise governance requirements",
				"Prevents sensitive actions from being executed without review",
				"Creates a clear queue of pending work to reduce bottlenecks",
				"Ensures decisions are traceable, including reviewer identity and timing",
				"Designed to prevent duplicate execution in high-volume environments",
			},
			KPIs: []string{
				"Reduction in high-impact errors (large adjustments, sensitive transfers)",
				"Approval cycle time (request → decision)",
				"Reduction in policy violations or unauthorized changes",
				"Improved audit readiness for approval-required workflows",
				"Reduction in rework due to incorrect or unreviewed actions",
			},
			Outcomes: []string{
				"Lower frequency of high-impact errors (e.g., large adjustments, sensitive transfers)",
				"Improved governance confidence for auditors and leadership",
				"Clear review queues that balance control and operational speed",
			},
			ExampleSteps: []string{
				"A staff member requests a sensitive adjustment (or sale confirmation) that requires review.",
				"A manager reviews and approves/rejects with optional notes.",
				"If approved, the system executes the action once and records the full audit trail.",
			},
		},
		{
			Title: "9) Barcode & QR Scanning",
			Overview: "Barcode/QR scan-first workflows reduce typing, speed up receiving and picking, and improve accuracy. " +
				"The system supports quick scan/lookup to find products, batches, or serial items.",
			Capabilities: []string{
				"Fast scan/lookup to identify products and stock context",
				"Support for camera-based scanning and USB scanners",
				"Improved usability for frontline teams",
				"Reduced manual entry and training time",
				"Better accuracy for high-throughput workflows",
			},
			BusinessBenefit:    "Faster receiving, picking, and verification improves productivity and customer outcomes.",
			OperationalBenefit: "Scan/lookup reduces manual typing and training time; supports varied devices.",
			RiskBenefit:        "Reduces incorrect item selection and data entry mistakes.",
			OperationalNotes: []string{
				"Supports high-throughput warehouse workflows where typing is a bottleneck",
				"Reduces training time by simplifying identification and lookup",
				"Improves accuracy in environments with look-alike products or complex SKUs",
				"Supports multiple scanning approaches (camera or USB scanner) to match client environments",
				"Improves operational confidence by returning consistent item identification results",
			},
			KPIs: []string{
				"Reduction in picking/receiving cycle time",
				"Reduction in item identification errors",
				"Reduction in manual typing-related data entry errors",
				"Improved throughput per user/hour in high-volume workflows",
				"Reduction in training time to reach target productivity",
			},
			Outcomes: []string{
				"Reduced receiving/picking cycle time",
				"Lower error rate from manual entry and incorrect item selection",
				"Faster onboarding for new warehouse staff",
			},
			ExampleSteps: []string{
				"A user scans an item code using a USB scanner or camera.",
				"The system returns the matching product/batch/serial result with key details.",
				"The user proceeds with the next operation with fewer mistakes and less rework.",
			},
		},
		{
			Title: "10) Audit & Compliance Logging",
			Overview: "Audit visibility supports enterprise governance: who did what, when, and with what outcome. " +
				"The system is designed to support investigations, compliance needs, and operational accountability.",
			Capabilities: []string{
				"Audit trails for high-impact operational actions and governance decisions",
				"Visibility for compliance and management stakeholders",
				"Support for investigations and exception resolution",
				"Approval decision traceability and reviewer accountability",
				"Operational transparency without slowing daily work",
			},
			BusinessBenefit:    "Improves governance confidence and supports compliance requirements.",
			OperationalBenefit: "Simplifies investigations by linking actions to users, time, and context.",
			RiskBenefit:        "Reduces fraud risk and supports audits with reliable evidence trails.",
			OperationalNotes: []string{
				"Supports internal controls by making key actions visible and reviewable",
				"Helps reduce reliance on informal knowledge and ad-hoc investigations",
				"Improves accountability across teams and warehouses",
				"Enables governance review routines (exceptions, adjustments, approvals)",
				"Supports audit stakeholders with consistent, predictable evidence trails",
			},
			KPIs: []string{
				"Time-to-resolution for discrepancies and exceptions",
				"Reduction in repeat exceptions (trend over time)",
				"Audit response time improvements (evidence retrieval speed)",
				"Reduction in unauthorized or unexplained activity",
				"Improved management review cadence and coverage",
			},
			Outcomes: []string{
				"Faster resolution of exceptions and discrepancies",
				"Stronger compliance posture for regulated environments",
				"Higher management confidence in operational governance",
			},
			ExampleSteps: []string{
				"A discrepancy is detected in inventory reporting.",
				"Teams review the audit trail to identify actions and responsible stakeholders.",
				"Corrective action is applied and documented with traceability intact.",
			},
		},
		{
			Title: "11) Reporting & Analytics",
			Overview: "Enterprise teams need reporting that is actionable, trusted, and role-appropriate. " +
				"The system provides dashboards and reports for operational execution, management review, and planning.",
			Capabilities: []string{
				"Role-scoped dashboards for daily execution and leadership visibility",
				"Operational reports across inventory, movements, purchases, sales, and audit",
				"Filters for warehouse, category, and time range",
				"Export-ready outputs for downstream workflows where permitted",
				"Signals for low stock and planning priorities",
			},
			BusinessBenefit:    "Create shared visibility across leadership, operations, and finance.",
			OperationalBenefit: "Role-scoped dashboards and reports for daily execution and planning.",
			RiskBenefit:        "Detect anomalies earlier; reduce surprises in operations and financial outcomes.",
			OperationalNotes: []string{
				"Designed to be actionable: reports support decisions, not just record-keeping",
				"Role-based visibility prevents overexposure of sensitive information",
				"Supports operational management routines (daily/weekly reviews)",
				"Enables exception-focused management rather than reactive firefighting",
				"Improves alignment across teams with shared, trusted data",
			},
			KPIs: []string{
				"Improved decision cycle time (how fast teams act on insights)",
				"Reduction in recurring exceptions identified via reporting",
				"Improved service levels through early risk visibility",
				"Reduction in time spent creating manual reports",
				"Improved management confidence in operational data quality",
			},
			Outcomes: []string{
				"More predictable operations through shared visibility and aligned priorities",
				"Earlier detection of anomalies and exception trends",
				"Improved decision-making through trusted reporting",
			},
			ExampleSteps: []string{
				"A manager reviews dashboards for low stock risk, movement trends, and exceptions.",
				"Reports are filtered by warehouse and timeframe to support action planning.",
				"Teams export or share key summaries for downstream review where required.",
			},
		},
	}
}

func proposalGovernance(b *docmodel.Builder) {
	b.Paragraph("Enterprise clients need to ensure the right people can do the right actions—and only those actions. The system uses permission-based access to support both standard and custom roles.")

	b.Heading("Standard roles", 2)
	b.Heading("Admin", 3)
	b.Bullet("Full access across all modules and configuration controls.")
	b.Bullet("Responsible for onboarding, governance, and system configuration.")
	b.Heading("Manager", 3)
	b.Bullet("Operational leadership access for inventory execution and reporting.")
	b.Bullet("May act as reviewer for approval workflows.")
	b.Heading("Staff", 3)
	b.Bullet("Frontline operational execution (as enabled by policy and permissions).")
	b.Bullet("Designed for warehouse users with clear, safe workflows.")
	b.Heading("Viewer", 3)
	b.Bullet("Read-only visibility for stakeholders who need insight without write capability.")

	b.Heading("Custom roles", 2)
	b.Bullet("Create roles aligned to job function (e.g., procurement, warehouse lead, auditor).")
	b.Bullet("Assign specific permissions to ensure least-privilege access.")

	b.Heading("Permission-based architecture", 2)
	b.Bullet("Permissions enable precise governance beyond role names.")
	b.Bullet("Supports segregation of duties (e.g., request vs approve).")

	b.Heading("Approval safeguards", 2)
	b.Bullet("Sensitive actions can be configured to require review before execution.")
	b.Bullet("Review actions are auditable, including outcome and reviewer identity.")

	b.Heading("Financial visibility controls", 2)
	b.Bullet("Financial metrics and valuation visibility can be restricted by permission.")
	b.Bullet("Supports clients who separate operational access from financial access.")
}

func proposalWorkflows(b *docmodel.Builder) {
	b.Paragraph("Below are the primary workflows described in business terms. The system is designed to be predictable for frontline teams and controllable for enterprise governance.")

	b.Heading("Purchase to Stock flow", 2)
	b.Numbered("Receive stock for a warehouse against a supplier shipment or reference.")
	b.Numbered("Validate quantities, batches/serials (if applicable), and confirm receipt.")
	b.Numbered("Stock becomes available immediately for downstream operations and reporting.")

	b.Heading("Sale to COGS flow", 2)
	b.Numbered("Create or record a sale order for a warehouse.")
	b.Numbered("Confirm the sale when it is ready to be executed (or route to approval if policy requires).")
	b.Numbered("Stock is reduced and the transaction is traceable for reporting and costing visibility.")

	b.Heading("Transfer between warehouses", 2)
	b.Numbered("Select source warehouse, destination warehouse, and quantity.")
	b.Numbered("Confirm transfer; inventory moves out of the source and into the destination with a single traceable transfer record.")
	b.Numbered("Both warehouses reflect the movement and history for accountability.")

	b.Heading("Adjustment & correction flow", 2)
	b.Numbered("When discrepancies occur, apply an adjustment with a reason (e.g., damage, count correction).")
	b.Numbered("The system records what changed and who performed the correction.")
	b.Numbered("Reporting retains visibility of adjustments for audits and improvement actions.")

	b.Heading("Approval lifecycle", 2)
	b.Numbered("A user requests an action that is configured as approval-required.")
	b.Numbered("A reviewer approves or rejects with optional notes.")
	b.Numbered("On approval, the action executes once and becomes part of the traceable operational history.")

	b.Heading("Reorder alert handling", 2)
	b.Numbered("The system monitors stock levels and identifies low-stock or stockout risk.")
	b.Numbered("Suggested reorder quantity is provided based on policy and usage trends.")
	b.Numbered("Teams can action reorder decisions with clear reasoning and prioritization.")

	b.Heading("Scan & lookup process", 2)
	b.Numbered("A user scans a barcode/QR code or enters a code manually.")
	b.Numbered("The system returns the most relevant match (product, batch, or serial) and key availability details.")
	b.Numbered("Users proceed with receiving, picking, or verification with fewer errors and faster execution.")
}

func proposalCosting(b *docmodel.Builder) {
	b.Paragraph("Inventory value and cost visibility are essential for enterprise management. The system supports common valuation approaches used in practice and provides consistent, auditable outcomes.")
	b.Heading("FIFO valuation", 2)
	b.Bullet("Supports cost layering and consistent valuation outcomes.")
	b.Bullet("Useful for organizations that need disciplined cost tracking over time.")
	b.Heading("Average costing", 2)
	b.Bullet("Provides stable cost behavior and simplified valuation for high-volume items.")
	b.Bullet("Suitable for businesses with frequent replenishment and consistent purchasing patterns.")
	b.Heading("Margin visibility", 2)
	b.Bullet("Supports informed decisions on pricing, procurement, and operational trade-offs.")
	b.Bullet("Helps identify margin leakage and cost anomalies earlier.")
	b.Heading("Financial reporting benefits", 2)
	b.Bullet("Consistent cost handling reduces reconciliation overhead.")
	b.Bullet("Improves confidence for leadership and audit stakeholders.")
}

func proposalForecasting(b *docmodel.Builder) {
	b.Paragraph("Forecasting capabilities reduce operational disruption and support predictable service levels. The system provides practical signals that teams can act on—without needing data science resources.")
	b.Heading("Low stock alerts", 2)
	b.Bullet("Identify low stock before it becomes a service issue.")
	b.Bullet("Focus on what matters: high-impact products and key locations.")
	b.Heading("Suggested reorder quantity", 2)
	b.Bullet("Recommendations align with usage trends and configured policies.")
	b.Bullet("Helps maintain service levels while controlling inventory investment.")
	b.Heading("Stockout prediction", 2)
	b.Bullet("Early warning signals protect continuity and customer commitments.")
	b.Bullet("Supports proactive procurement and replenishment scheduling.")
	b.Heading("Business continuity advantage", 2)
	b.Bullet("Reduce urgent purchasing and expediting costs.")
	b.Bullet("Maintain stability across warehouses and distribution points.")
}

func proposalCompliance(b *docmodel.Builder) {
	b.Paragraph("Traceability and accountability are built into the operational design. The system provides a dependable evidence trail for review and audits—while keeping everyday workflows efficient.")
	b.Heading("Full traceability", 2)
	b.Bullet("Clear history of stock changes by product and warehouse.")
	b.Bullet("Context for why changes happened (references, reasons, approvals).")
	b.Heading("Immutable ledger mindset", 2)
	b.Bullet("Operational history is preserved so investigations are possible and consistent.")
	b.Heading("Approval audit trails", 2)
	b.Bullet("Request, reviewer, decision, and execution are traceable.")
	b.Bullet("Supports segregation of duties and governance evidence.")
	b.Heading("User accountability", 2)
	b.Bullet("Actions are tied to user identity, role permissions, and timestamps.")
}

func proposalArchitecture(b *docmodel.Builder) {
	b.Paragraph("The system is built on a modern, scalable web architecture suitable for enterprise environments. This section is intentionally high-level and client-friendly.")
	b.Heading("Modern web architecture", 2)
	b.Bullet("Web-based access for distributed teams and multi-site operations.")
	b.Bullet("Designed for reliability and clear operational flows.")
	b.Heading("Secure role-based access", 2)
	b.Bullet("Permission-based model to support least-privilege access.")
	b.Bullet("Supports customization for client-specific governance models.")
	b.Heading("Performance optimized", 2)
	b.Bullet("Designed for responsive daily operations and reporting workloads.")
	b.Bullet("Supports growth in catalog size and warehouse activity.")
	b.Heading("Extensible for integrations", 2)
	b.Bullet("Designed to be integration-ready for future needs (ERP, accounting, e-commerce, BI).")
	b.Bullet("Approach supports staged rollout of integrations to reduce implementation risk.")
	b.Heading("API ready (future integration)", 2)
	b.Bullet("Supports future integration strategy without redesigning core workflows.")
}

func proposalImplementation(b *docmodel.Builder) {
	b.Paragraph("A successful rollout balances speed with risk control. The approach below supports enterprise clients through configuration, migration, training, and go-live readiness.")

	b.Heading("Suggested implementation phases (example)", 2)
	b.Table(
		[]string{"Phase", "Focus", "Typical deliverables"},
		[][]string{
			{"Phase 1", "Discovery & configuration", "Process mapping, warehouse setup, role/permission model, approval policy design"},
			{"Phase 2", "Data onboarding", "Product catalog import, opening stock validation, pilot warehouse onboarding"},
			{"Phase 3", "Pilot rollout", "Role-based training, controlled go-live for a subset of users/sites"},
			{"Phase 4", "Enterprise rollout", "Full site rollout, governance tuning, reporting baselines and KPIs"},
			{"Phase 5", "Optimization", "Forecast tuning, exception management, continuous improvement cadence"},
		},
	)

	b.Heading("Setup & configuration", 2)
	b.Bullet("Define warehouses, product catalog structure, and operational policies.")
	b.Bullet("Configure roles and permissions aligned to organizational governance.")
	b.Bullet("Enable approvals for workflows where required.")
	b.Heading("Data migration", 2)
	b.Bullet("Import products, initial stock, and supporting master data.")
	b.Bullet("Validate counts and reconcile variances before go-live.")
	b.Heading("User onboarding", 2)
	b.Bullet("Create user accounts and assign roles based on job function.")
	b.Bullet("Pilot with a small user group to validate workflows.")
	b.Heading("Training", 2)
	b.Bullet("Role-based training paths: staff, managers, approvers, admins.")
	b.Bullet("Operational job aids for receiving, scanning, transfers, and adjustments.")
	b.Heading("Go-live checklist", 2)
	b.Bullet("Confirm governance settings: approvals, permissions, and financial visibility.")
	b.Bullet("Validate stock positions and reporting baselines.")
	b.Bullet("Define support process and escalation paths for early go-live weeks.")
	b.Bullet("Confirm operational responsibilities (who receives, who approves, who adjusts, who audits).")
	b.Bullet("Define a regular cadence for reviewing exceptions, low stock risk, and process improvements.")
}

func proposalWhy(b *docmodel.Builder) {
	b.Bullet("Enterprise-grade controls without enterprise-level complexity for frontline teams.")
	b.Bullet("Scalable multi-warehouse design that grows with operations.")
	b.Bullet("Intelligent forecasting and reorder guidance for better continuity.")
	b.Bullet("Operational efficiency through scan-enabled workflows and standardized execution.")
	b.Bullet("Risk reduction through approvals, traceability, and user accountability.")
	b.Bullet("Cost accuracy and margin visibility through structured valuation approaches (where enabled).")
	b.Bullet("A future-proof platform designed for integration and extension.")
}

func proposalRoadmap(b *docmodel.Builder) {
	b.Paragraph("Roadmap items can be prioritized based on client needs and rollout maturity. The system is designed to support staged expansion without disrupting core operations.")
	b.Heading("API integrations", 2)
	b.Bullet("ERP/accounting integration for financial automation.")
	b.Bullet("E-commerce and order management integration to synchronize demand and fulfillment.")
	b.Heading("Advanced analytics", 2)
	b.Bullet("Executive dashboards and operational KPIs by site, product category, and time period.")
	b.Bullet("Exception analytics for shrinkage, adjustments, and policy violations.")
	b.Heading("AI forecasting", 2)
	b.Bullet("Enhanced demand forecasting using seasonality, promotions, and lead time variability.")
	b.Bullet("Automated recommendations for reorder and inventory positioning across warehouses.")
	b.Heading("Mobile-first warehouse tools", 2)
	b.Bullet("Optimized mobile workflows for receiving, cycle counts, picking, and verification.")
	b.Bullet("Device-native scanning and offline-friendly execution for constrained environments.")
}

func proposalConclusion(b *docmodel.Builder) {
	b.Paragraph("The Inventory Management System provides enterprise clients with the controls and visibility required to run multi-warehouse inventory operations with confidence. " +
		"It combines operational speed (scan-enabled workflows), governance (permissions and approvals), financial discipline (valuation support), and intelligence (reorder and stockout prediction). " +
		"The result is a scalable, future-proof platform that reduces risk, improves accuracy, and strengthens decision-making.")
	b.Paragraph("We welcome the opportunity to tailor the rollout plan and governance model to your organization’s operational realities and compliance needs.")
}
