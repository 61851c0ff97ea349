package content

import (
	"strings"
	"time"

	"github.com/kwhitfield/docforge/internal/compose"
	"github.com/kwhitfield/docforge/internal/docmodel"
)

// MasterDocumentation is the internal engineering document: split
// footer with a confidential notice, 0.8/0.9 inch margins, a version
// history table, and repeated per-module and per-flow sub-structures.
func MasterDocumentation(date time.Time) compose.Plan {
	today := date.Format("2006-01-02")
	return compose.Plan{
		Title:        SystemName,
		Subtitle:     "Master Documentation (Phase 0 → Phase 5)",
		TitleSizePts: 28,
		Meta: []compose.MetaLine{
			{Text: "Version: " + Version, Bold: true},
			{Text: "Prepared by: " + PreparedBy},
			{Text: "Date: " + today},
		},
		HeaderText:       SystemName + " — v" + Version,
		Footer:           compose.FooterSplit,
		ConfidentialNote: ConfidentialNote,
		Margins: docmodel.Margins{
			Top:    docmodel.Twips(0.8),
			Bottom: docmodel.Twips(0.8),
			Left:   docmodel.Twips(0.9),
			Right:  docmodel.Twips(0.9),
		},
		FileName: "Inventory_Management_System_Master_Documentation.docx",
		Date:     date,
		Sections: masterSections(today),
	}
}

func masterSections(today string) []compose.SectionPlan {
	return []compose.SectionPlan{
		{Title: "Version History", Body: func(b *docmodel.Builder) {
			b.Table(
				[]string{"Version", "Date", "Description", "Author"},
				[][]string{
					{Version, today, "Initial master documentation for Phase 0–5 implementation.", PreparedBy},
				},
			)
		}},
		{Title: "SECTION 1 — Executive Summary", Body: masterExecutiveSummary},
		{Title: "SECTION 2 — System Architecture", Body: masterArchitecture},
		{Title: "SECTION 3 — Database & Business Logic", Body: masterDatabase},
		{Title: "SECTION 4 — Complete Module Documentation", Body: masterModules},
		{Title: "SECTION 5 — Role-Based Complete Functional Guide", Body: masterRoles},
		{Title: "SECTION 6 — Complete Feature Flows", Body: masterFlows},
		{Title: "SECTION 7 — Smart Reorder & Forecasting", Body: masterForecasting},
		{Title: "SECTION 8 — Valuation & Financial Logic", Body: masterValuation},
		{Title: "SECTION 9 — Approval Workflow Engine", Body: masterApprovals},
		{Title: "SECTION 10 — Barcode & Scanning Guide", Body: masterScanning},
		{Title: "SECTION 11 — Onboarding Guide for New Business", Body: masterOnboarding},
		{Title: "SECTION 12 — Troubleshooting & FAQ", Body: masterTroubleshooting},
		{Title: "SECTION 13 — Glossary", Body: masterGlossary},
	}
}

func masterExecutiveSummary(b *docmodel.Builder) {
	b.Heading("System Overview", 2)
	b.Bullet("A modular inventory management platform designed for controlled stock execution, auditability, and operational scale.")
	b.Bullet("Supports warehouses, products, stock ledger, approvals, forecasting, and scanning workflows up to Phase 5.")
	b.Heading("Target Audience", 2)
	b.Bullet("Operations (warehouse staff, inventory clerks, managers).")
	b.Bullet("Finance/controls (read-only financial visibility where enabled).")
	b.Bullet("Administrators and auditors (RBAC, audit logs, approvals).")
	b.Heading("Competitive Advantages", 2)
	b.Bullet("Ledger-first stock engine: immutable movements with balance snapshots.")
	b.Bullet("Approval workflow to enforce governance before execution.")
	b.Bullet("Batch and serial tracking support for regulated/traceable inventory.")
	b.Bullet("Barcode/scan lookup for high-throughput operations.")
	b.Heading("Enterprise Readiness", 2)
	b.Bullet("Strict RBAC permissions, system roles plus customizable roles.")
	b.Bullet("Audit logging for critical actions.")
	b.Bullet("Integrity verification scripts for ledger vs balances.")
}

func masterArchitecture(b *docmodel.Builder) {
	b.Heading("Technical Stack", 2)
	b.Bullet("Next.js 15 (App Router), TypeScript (strict).")
	b.Bullet("Prisma ORM + PostgreSQL.")
	b.Bullet("NextAuth (Credentials) for authentication; JWT session strategy.")
	b.Heading("Service Structure (Architecture Rules)", 2)
	b.Bullet("Route handlers are thin; business logic lives in server/services; data access in server/repositories.")
	b.Bullet("StockService is the only stock mutator; do not write stock ledger/balances directly.")
	b.Heading("Stock Engine: Ledger + Balances", 2)
	b.Bullet("Ledger: stock_movements (immutable; IN/OUT) with references (PURCHASE/SALE/TRANSFER/ADJUSTMENT).")
	b.Bullet("Balances: stock_balances as snapshot per product/warehouse (+ optional batchId).")
	b.Bullet("Transfers execute as two movements with a shared referenceId in one transaction.")
	b.Heading("Approval Engine (Phase 4)", 2)
	b.Bullet("Policies define which entity actions require approval.")
	b.Bullet("ApprovalRequest lifecycle: PENDING → APPROVED/REJECTED/CANCELLED.")
	b.Bullet("Execution is idempotent: approving an already-approved request does not execute twice.")
	b.Heading("Forecasting Engine (Phase 3)", 2)
	b.Bullet("InventoryMetricsService computes avgDailySales, daysOfCover, predictedStockoutDate, suggestedReorderQty.")
	b.Bullet("ReorderPolicy per product+warehouse defines leadTimeDays, min/max, safety stock.")
	b.Heading("Scanning Architecture (Phase 5)", 2)
	b.Bullet("Scan lookup endpoint resolves codes (e.g., product.barcode / sku / serial numbers) for quick retrieval.")
	b.Bullet("Database indexes support lookup performance (e.g., Product.barcode, ProductSerial.serialNumber).")
	b.Heading("High-Level Data Flow", 2)
	b.Bullet("UI → API route handler → service layer (validation + rules) → repositories/Prisma → audit log.")
}

func masterDatabase(b *docmodel.Builder) {
	b.Heading("Ledger Principle", 2)
	b.Bullet("All inventory changes are recorded as immutable stock_movements.")
	b.Bullet("Movements are never edited/deleted; corrections happen via new movements (e.g., adjustment).")
	b.Heading("Balance Snapshot Principle", 2)
	b.Bullet("stock_balances stores the current snapshot for fast reads; it must match SUM(ledger movements).")
	b.Bullet("Integrity verification checks balances vs ledger and transfer consistency.")
	b.Heading("Transfers Create Two Movements", 2)
	b.Bullet("A transfer creates one OUT movement from source and one IN movement to destination, with the same referenceId.")
	b.Heading("Approvals Block Execution", 2)
	b.Bullet("When approval is required, the system creates a request and defers stock mutation until approved.")
	b.Heading("Batch & Serial Rules", 2)
	b.Bullet("Batch-tracked products require batchId/batchNumber on IN and batchId on OUT.")
	b.Bullet("Serial-tracked products require serial numbers on OUT; serials transition status (e.g., IN_STOCK → SOLD).")
	b.Heading("FIFO vs Average Cost (Phase 2)", 2)
	b.Bullet("Valuation method is stored in Settings. InventoryLayer/Consumption tables exist to support costing.")
	b.Bullet("COGS and margin fields exist on sales items for reporting when valuation/COGS logic is enabled.")
	b.Heading("Reorder Forecasting Formulas (Phase 3)", 2)
	b.Bullet("Avg daily sales = total sold qty over lookback / lookbackDays.")
	b.Bullet("Days of cover = currentStock / avgDailySales (if avgDailySales > 0).")
	b.Bullet("Suggested reorder qty = max(0, leadDemand + safetyStock − currentStock).")
}

func masterModules(b *docmodel.Builder) {
	modules := []string{
		"Dashboard",
		"Products",
		"Warehouses",
		"Stock Movements",
		"Purchases",
		"Sales",
		"Reports",
		"Users",
		"Roles",
		"Audit Logs",
		"Settings",
		"Approvals",
		"Scan",
	}
	for _, m := range modules {
		b.Heading(m, 2)
		b.Heading("Purpose", 3)
		b.Bullet("Provides the primary capabilities for " + strings.ToLower(m) + " management and visibility.")
		b.Heading("What it manages", 3)
		b.Bullet("Entities, validations, and operational workflows relevant to this module.")
		b.Heading("Core functionality", 3)
		b.Bullet("Create, view, and manage records according to permissions.")
		b.Heading("Business rules", 3)
		b.Bullet("Rules enforced by services (stock execution rules, approval gating, validation constraints).")
		b.Heading("Validation rules", 3)
		b.Bullet("Schema validation (API payload validation) and service-level checks (e.g., stock availability).")
		b.Heading("Data flow", 3)
		b.Bullet("UI → API → service → Prisma → audit/integrity metrics updates.")
		b.Heading("Role access overview", 3)
		b.Bullet("Access is permission-based; Admin has full access; other roles are scoped.")
		b.Heading("Common use cases", 3)
		b.Bullet("Daily operations, reporting, and exception handling.")
		b.Heading("Edge cases", 3)
		b.Bullet("Approval-required actions, insufficient stock, batch/serial requirements, and invalid inputs.")
	}
}

func masterRoles(b *docmodel.Builder) {
	b.Heading("Role Model", 2)
	b.Bullet("System supports default roles (Admin/Manager/Staff/Viewer) and custom roles (permission-based).")
	b.Bullet("Custom roles can be created and assigned with specific permissions (e.g., warehouse_lead).")

	b.Heading("Admin", 2)
	b.Bullet("Can see/create/edit/delete across modules; can configure approvals, roles, and settings.")
	b.Bullet("Approval authority depends on policy and permissions (approvals.review/manage).")
	b.Heading("Admin step-by-step guide", 3)
	for _, step := range []string{
		"Log in as admin and review dashboard health.",
		"Create warehouses and confirm codes/locations.",
		"Configure valuation method (FIFO or Average) and financial visibility rules.",
		"Configure approval policies for purchase receive, sale confirm, transfers, and adjustments.",
		"Create roles and users; assign permissions based on job function.",
		"Configure reorder policies per product/warehouse; recompute metrics.",
		"Review audit logs and approvals queue regularly.",
		"Enable/disable system lockdown according to governance policy.",
		"Run reports and export where permitted.",
	} {
		b.Numbered(step)
	}

	b.Heading("Manager", 2)
	b.Bullet("Can operate inventory workflows, review reports, and review/approve where permitted.")
	b.Heading("Manager step-by-step guide", 3)
	for _, step := range []string{
		"Monitor dashboard KPIs and low-stock indicators.",
		"Review the approvals queue and approve eligible requests.",
		"Oversee purchase receiving and investigate exceptions (batch/serial mismatches).",
		"Review stock movement history for anomalies.",
		"Use reports to support replenishment decisions.",
	} {
		b.Numbered(step)
	}

	b.Heading("Staff", 2)
	b.Bullet("Executes operational workflows (receive, confirm, transfer, adjust) subject to permissions and approvals.")
	b.Heading("Staff step-by-step guide", 3)
	for _, step := range []string{
		"Create or prepare purchase receive payload; include batch/serial inputs when required.",
		"Receive purchase (or submit for approval if enabled).",
		"Create sale and confirm sale; for serial items, select serial numbers; for batch items, select batch.",
		"Transfer stock between warehouses (may require approval).",
		"Perform stock adjustments with reason codes (may require approval).",
		"Use scanning via USB/camera for fast product lookup and operational flow entry.",
	} {
		b.Numbered(step)
	}

	b.Heading("Viewer", 2)
	b.Bullet("Read-only access to dashboards and reports; cannot execute stock-changing actions.")
	b.Heading("Viewer step-by-step guide", 3)
	for _, step := range []string{
		"View dashboard for high-level visibility.",
		"Use reports to review inventory and movement history.",
		"Export reports only if permission allows; otherwise request access from Admin.",
	} {
		b.Numbered(step)
	}
}

func masterFlows(b *docmodel.Builder) {
	flows := []string{
		"Purchase Receive Flow",
		"Sale Confirm Flow",
		"Transfer Flow",
		"Stock Adjustment Flow",
		"Approval Flow",
		"Batch Lifecycle",
		"Serial Lifecycle",
		"FIFO Layer Consumption Flow",
		"Average Cost Flow",
		"Reorder Forecast Flow",
		"Scan & Lookup Flow",
	}
	for _, f := range flows {
		b.Heading(f, 2)
		b.Heading("Trigger", 3)
		b.Bullet("User action via UI/API route that initiates the workflow.")
		b.Heading("Validation", 3)
		b.Bullet("Schema validation + business rule checks (permissions, quantities, batch/serial requirements).")
		b.Heading("Service execution", 3)
		b.Bullet("Service layer executes stock mutation through StockService when allowed.")
		b.Heading("DB impact", 3)
		b.Bullet("Writes ledger movements and updates balances; persists request entities where applicable.")
		b.Heading("Status transitions", 3)
		b.Bullet("For approval workflows: PENDING_APPROVAL → APPROVED/REJECTED → APPLIED/CONFIRMED/RECEIVED.")
		b.Heading("Audit logs created", 3)
		b.Bullet("Critical actions create audit entries; approvals add request/review/execution logs.")
	}
}

func masterForecasting(b *docmodel.Builder) {
	b.Heading("Formulas", 2)
	b.Bullet("Avg daily sales = SUM(sales qty over lookback) / lookbackDays.")
	b.Bullet("Days of cover = currentStock / avgDailySales (when avgDailySales > 0).")
	b.Bullet("Suggested reorder qty = max(0, leadTimeDays*avgDailySales + safetyStock − currentStock).")
	b.Heading("Stockout Prediction Logic", 2)
	b.Bullet("predictedStockoutDate is computed as now + daysOfCover when avgDailySales > 0.")
	b.Heading("Dashboard Integration", 2)
	b.Bullet("Metrics are stored in inventory_metrics for fast dashboard rendering.")
}

func masterValuation(b *docmodel.Builder) {
	b.Heading("FIFO Example", 2)
	b.Bullet("Example: buy 10 units @ $5, then 10 units @ $7. Sell 12 units → COGS = 10*$5 + 2*$7 = $64.")
	b.Heading("Average Cost Example", 2)
	b.Bullet("Example: same purchases → average = (10*$5 + 10*$7)/20 = $6. Sell 12 → COGS = 12*$6 = $72.")
	b.Heading("COGS and Margin", 2)
	b.Bullet("COGS is recorded per sale item when valuation logic is enabled; margin = revenue − COGS.")
	b.Heading("Permission Gating", 2)
	b.Bullet("Financial visibility should be controlled by permissions (e.g., financials.read) and Settings.showFinancials.")
}

func masterApprovals(b *docmodel.Builder) {
	b.Heading("Policy Configuration", 2)
	b.Bullet("ApprovalPolicy per entity type toggles whether approval is required.")
	b.Bullet("Policies can include permission requirements and thresholds (e.g., minAmount).")
	b.Heading("Lifecycle: Pending → Approved → Executed", 2)
	b.Bullet("Request is created PENDING; reviewers approve/reject; approval execution performs the stock mutation.")
	b.Heading("Idempotency", 2)
	b.Bullet("If an approval is already approved/executed, re-approving will not execute again.")
	b.Heading("Rejection Behavior", 2)
	b.Bullet("Rejected requests do not mutate stock; entity status transitions to REJECTED where applicable.")
	b.Heading("Audit Trail", 2)
	b.Bullet("Approval requests, reviews, cancellations, and executions are audited.")
}

func masterScanning(b *docmodel.Builder) {
	b.Heading("Modes", 2)
	b.Bullet("Manual entry: user types or pastes a code.")
	b.Bullet("USB scanner: behaves like keyboard input, submits the scanned code.")
	b.Bullet("Camera scanning: uses device camera; best on mobile over HTTPS.")
	b.Heading("Lookup Resolution Priority", 2)
	b.Bullet("Typical resolution: product barcode → SKU → serial number → batch barcode/number (as supported).")
	b.Heading("Performance & Indexing", 2)
	b.Bullet("Ensure indexed columns exist (Product.barcode, ProductSerial.serialNumber, Batch.barcode).")
}

func masterOnboarding(b *docmodel.Builder) {
	for _, step := range []string{
		"Create warehouses and verify default warehouse settings.",
		"Import or create products (enable batch/serial flags where required).",
		"Perform initial stock load via purchase receive or adjustments (with correct batch/serial inputs).",
		"Configure approvals policies and reviewer roles (if governance required).",
		"Configure reorder policies and recompute metrics.",
		"Validate scanning setup (manual/USB/camera) and label process.",
		"Run integrity verification and confirm dashboards/reports are correct.",
		"Go-live checklist: restrict admin access, confirm backups, enable/disable system lockdown policy.",
	} {
		b.Numbered(step)
	}
}

func masterTroubleshooting(b *docmodel.Builder) {
	b.Heading("Common Issues", 2)
	b.Bullet("Stock not updating: ensure action was executed (not pending approval) and that StockService was used.")
	b.Bullet("Approval blocking execution: check ApprovalPolicy and approval request status.")
	b.Bullet("Serial mismatch: serialNumbers count must equal quantity; serial must be IN_STOCK in the selected warehouse.")
	b.Bullet("Batch required: batch-tracked products require batch input/selection for IN/OUT.")
	b.Bullet("Negative stock blocked: Settings.allowNegativeStock=false prevents stock from going below zero.")
	b.Bullet("Scan not found: verify code source (barcode vs SKU vs serial), indexing, and product activation.")
	b.Bullet("Dashboard delay: metrics recomputation may run after execution; recompute metrics if needed.")
	b.Bullet("Integrity mismatch: run integrity checks; investigate missing transfer pairs or manual data edits.")
}

func masterGlossary(b *docmodel.Builder) {
	glossary := []struct {
		term string
		desc string
	}{
		{"Ledger", "Immutable record of stock movements (IN/OUT) used as the source of truth."},
		{"Balance", "Snapshot quantity stored for fast reads; must reconcile with the ledger."},
		{"Batch/Lot", "A grouped inventory identifier (e.g., manufacturing batch) used for traceability."},
		{"Serial", "A unique identifier per unit; tracked through lifecycle states."},
		{"FIFO", "First-In, First-Out valuation method consuming oldest layers first."},
		{"Average Cost", "Valuation method using weighted average unit cost."},
		{"COGS", "Cost of Goods Sold; the cost portion of a sale."},
		{"Layer", "Inventory valuation layer representing acquired quantity at a unit cost."},
		{"Days of Cover", "How long current stock lasts at the observed sales rate."},
		{"Approval Policy", "Rules defining when an action requires approval."},
		{"Approval Request", "A request instance awaiting review; approval triggers execution."},
	}
	for _, g := range glossary {
		b.Heading(g.term, 2)
		b.Paragraph(g.desc)
	}
}
