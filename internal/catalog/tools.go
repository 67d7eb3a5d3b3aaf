package catalog

// This file is the compiled-in tool table for the Follow Up Boss API.
// It is pure declarative data: one entry per REST endpoint the bridge
// exposes. Paths are relative to the configured upstream base URL and
// use :name placeholders for path parameters.

// Builtin returns the catalog built from the static tool table.
func Builtin() *Catalog {
	return builtin
}

var builtin = MustNew(tools)

// idParam returns the standard numeric :id path parameter.
func idParam(desc string) Param {
	return Param{Name: "id", Type: "number", Description: desc, Required: true, In: "path"}
}

// dataParam returns the standard request body parameter for mutating tools.
func dataParam(desc string) Param {
	return Param{Name: "data", Type: "object", Description: desc, In: "body"}
}

// pageParams returns the standard paging parameters for list tools.
func pageParams() []Param {
	return []Param{
		{Name: "limit", Type: "number", Description: "Maximum number of results to return", In: "query"},
		{Name: "offset", Type: "number", Description: "Number of results to skip", In: "query"},
		{Name: "sort", Type: "string", Description: "Sort field, prefix with - for descending", In: "query"},
	}
}

var tools = []Tool{
	// People
	{
		Name:        "list_people",
		Description: "List people (leads and contacts), with optional filtering and paging",
		Method:      "GET",
		Path:        "/people",
		Params: append(pageParams(),
			Param{Name: "q", Type: "string", Description: "Search query matched against name, email and phone", In: "query"},
			Param{Name: "stage", Type: "string", Description: "Filter by stage name", In: "query"},
			Param{Name: "source", Type: "string", Description: "Filter by lead source", In: "query"},
			Param{Name: "assignedTo", Type: "string", Description: "Filter by assigned agent name", In: "query"},
			Param{Name: "tags", Type: "string", Description: "Comma-separated list of tags to filter by", In: "query"},
		),
	},
	{
		Name:        "get_person",
		Description: "Get a single person by ID",
		Method:      "GET",
		Path:        "/people/:id",
		Params: []Param{
			idParam("Person ID"),
			{Name: "fields", Type: "string", Description: "Comma-separated list of fields to include", In: "query"},
		},
	},
	{
		Name:        "create_person",
		Description: "Create a new person",
		Method:      "POST",
		Path:        "/people",
		Params:      []Param{dataParam("Person fields (firstName, lastName, emails, phones, stage, ...)")},
	},
	{
		Name:        "update_person",
		Description: "Update an existing person",
		Method:      "PUT",
		Path:        "/people/:id",
		Params:      []Param{idParam("Person ID"), dataParam("Person fields to update")},
	},
	{
		Name:        "delete_person",
		Description: "Delete a person",
		Method:      "DELETE",
		Path:        "/people/:id",
		Params:      []Param{idParam("Person ID")},
	},
	{
		Name:        "check_duplicate_person",
		Description: "Check whether a person with the given email or phone already exists",
		Method:      "GET",
		Path:        "/people/checkDuplicate",
		Params: []Param{
			{Name: "email", Type: "string", Description: "Email address to check", In: "query"},
			{Name: "phone", Type: "string", Description: "Phone number to check", In: "query"},
		},
	},
	{
		Name:        "list_unclaimed_people",
		Description: "List unclaimed leads available to claim",
		Method:      "GET",
		Path:        "/people/unclaimed",
		Params:      pageParams(),
	},
	{
		Name:        "claim_person",
		Description: "Claim an unclaimed lead by ID",
		Method:      "POST",
		Path:        "/people/:id/claim",
		Params:      []Param{idParam("Person ID of the unclaimed lead")},
	},
	{
		Name:        "ignore_person",
		Description: "Ignore an unclaimed lead by ID",
		Method:      "POST",
		Path:        "/people/:id/ignore",
		Params:      []Param{idParam("Person ID of the unclaimed lead")},
	},

	// People relationships
	{
		Name:        "list_relationships",
		Description: "List relationships between people",
		Method:      "GET",
		Path:        "/peopleRelationships",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
		),
	},
	{
		Name:        "get_relationship",
		Description: "Get a single relationship by ID",
		Method:      "GET",
		Path:        "/peopleRelationships/:id",
		Params:      []Param{idParam("Relationship ID")},
	},
	{
		Name:        "create_relationship",
		Description: "Create a relationship between two people",
		Method:      "POST",
		Path:        "/peopleRelationships",
		Params:      []Param{dataParam("Relationship fields (personId, relatedPersonId, type)")},
	},
	{
		Name:        "update_relationship",
		Description: "Update an existing relationship",
		Method:      "PUT",
		Path:        "/peopleRelationships/:id",
		Params:      []Param{idParam("Relationship ID"), dataParam("Relationship fields to update")},
	},
	{
		Name:        "delete_relationship",
		Description: "Delete a relationship",
		Method:      "DELETE",
		Path:        "/peopleRelationships/:id",
		Params:      []Param{idParam("Relationship ID")},
	},

	// Notes
	{
		Name:        "list_notes",
		Description: "List notes, optionally for a single person",
		Method:      "GET",
		Path:        "/notes",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
		),
	},
	{
		Name:        "get_note",
		Description: "Get a single note by ID",
		Method:      "GET",
		Path:        "/notes/:id",
		Params:      []Param{idParam("Note ID")},
	},
	{
		Name:        "create_note",
		Description: "Create a note on a person",
		Method:      "POST",
		Path:        "/notes",
		Params:      []Param{dataParam("Note fields (personId, subject, body, isHtml)")},
	},
	{
		Name:        "update_note",
		Description: "Update an existing note",
		Method:      "PUT",
		Path:        "/notes/:id",
		Params:      []Param{idParam("Note ID"), dataParam("Note fields to update")},
	},
	{
		Name:        "delete_note",
		Description: "Delete a note",
		Method:      "DELETE",
		Path:        "/notes/:id",
		Params:      []Param{idParam("Note ID")},
	},

	// Tasks
	{
		Name:        "list_tasks",
		Description: "List tasks, with optional filtering by person or assignee",
		Method:      "GET",
		Path:        "/tasks",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
			Param{Name: "assignedTo", Type: "string", Description: "Filter by assigned agent name", In: "query"},
			Param{Name: "status", Type: "string", Description: "Filter by status (open or completed)", In: "query"},
		),
	},
	{
		Name:        "get_task",
		Description: "Get a single task by ID",
		Method:      "GET",
		Path:        "/tasks/:id",
		Params:      []Param{idParam("Task ID")},
	},
	{
		Name:        "create_task",
		Description: "Create a task",
		Method:      "POST",
		Path:        "/tasks",
		Params:      []Param{dataParam("Task fields (personId, name, dueDate, assignedUserId)")},
	},
	{
		Name:        "update_task",
		Description: "Update an existing task",
		Method:      "PUT",
		Path:        "/tasks/:id",
		Params:      []Param{idParam("Task ID"), dataParam("Task fields to update")},
	},
	{
		Name:        "delete_task",
		Description: "Delete a task",
		Method:      "DELETE",
		Path:        "/tasks/:id",
		Params:      []Param{idParam("Task ID")},
	},

	// Deals
	{
		Name:        "list_deals",
		Description: "List deals, with optional filtering by pipeline or stage",
		Method:      "GET",
		Path:        "/deals",
		Params: append(pageParams(),
			Param{Name: "pipelineId", Type: "number", Description: "Filter by pipeline ID", In: "query"},
			Param{Name: "stageId", Type: "number", Description: "Filter by stage ID", In: "query"},
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
			Param{Name: "status", Type: "string", Description: "Filter by status (active, won, lost)", In: "query"},
		),
	},
	{
		Name:        "get_deal",
		Description: "Get a single deal by ID",
		Method:      "GET",
		Path:        "/deals/:id",
		Params:      []Param{idParam("Deal ID")},
	},
	{
		Name:        "create_deal",
		Description: "Create a deal",
		Method:      "POST",
		Path:        "/deals",
		Params:      []Param{dataParam("Deal fields (name, stageId, price, personId, ...)")},
	},
	{
		Name:        "update_deal",
		Description: "Update an existing deal",
		Method:      "PUT",
		Path:        "/deals/:id",
		Params:      []Param{idParam("Deal ID"), dataParam("Deal fields to update")},
	},
	{
		Name:        "delete_deal",
		Description: "Delete a deal",
		Method:      "DELETE",
		Path:        "/deals/:id",
		Params:      []Param{idParam("Deal ID")},
	},

	// Pipelines
	{
		Name:        "list_pipelines",
		Description: "List deal pipelines",
		Method:      "GET",
		Path:        "/pipelines",
		Params:      pageParams(),
	},
	{
		Name:        "get_pipeline",
		Description: "Get a single pipeline by ID",
		Method:      "GET",
		Path:        "/pipelines/:id",
		Params:      []Param{idParam("Pipeline ID")},
	},
	{
		Name:        "create_pipeline",
		Description: "Create a deal pipeline",
		Method:      "POST",
		Path:        "/pipelines",
		Params:      []Param{dataParam("Pipeline fields (name)")},
	},
	{
		Name:        "update_pipeline",
		Description: "Update an existing pipeline",
		Method:      "PUT",
		Path:        "/pipelines/:id",
		Params:      []Param{idParam("Pipeline ID"), dataParam("Pipeline fields to update")},
	},
	{
		Name:        "delete_pipeline",
		Description: "Delete a pipeline",
		Method:      "DELETE",
		Path:        "/pipelines/:id",
		Params:      []Param{idParam("Pipeline ID")},
	},

	// Stages
	{
		Name:        "list_stages",
		Description: "List stages",
		Method:      "GET",
		Path:        "/stages",
		Params:      pageParams(),
	},
	{
		Name:        "get_stage",
		Description: "Get a single stage by ID",
		Method:      "GET",
		Path:        "/stages/:id",
		Params:      []Param{idParam("Stage ID")},
	},
	{
		Name:        "create_stage",
		Description: "Create a stage",
		Method:      "POST",
		Path:        "/stages",
		Params:      []Param{dataParam("Stage fields (name)")},
	},
	{
		Name:        "update_stage",
		Description: "Update an existing stage",
		Method:      "PUT",
		Path:        "/stages/:id",
		Params:      []Param{idParam("Stage ID"), dataParam("Stage fields to update")},
	},
	{
		Name:        "delete_stage",
		Description: "Delete a stage",
		Method:      "DELETE",
		Path:        "/stages/:id",
		Params:      []Param{idParam("Stage ID")},
	},

	// Events
	{
		Name:        "list_events",
		Description: "List lead events (inquiries, registrations, property views)",
		Method:      "GET",
		Path:        "/events",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
			Param{Name: "type", Type: "string", Description: "Filter by event type", In: "query"},
		),
	},
	{
		Name:        "get_event",
		Description: "Get a single event by ID",
		Method:      "GET",
		Path:        "/events/:id",
		Params:      []Param{idParam("Event ID")},
	},
	{
		Name:        "create_event",
		Description: "Create a lead event (the standard way to submit new leads)",
		Method:      "POST",
		Path:        "/events",
		Params:      []Param{dataParam("Event fields (source, type, person, property, ...)")},
	},

	// Calls
	{
		Name:        "list_calls",
		Description: "List logged phone calls",
		Method:      "GET",
		Path:        "/calls",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
		),
	},
	{
		Name:        "get_call",
		Description: "Get a single call by ID",
		Method:      "GET",
		Path:        "/calls/:id",
		Params:      []Param{idParam("Call ID")},
	},
	{
		Name:        "create_call",
		Description: "Log a phone call against a person",
		Method:      "POST",
		Path:        "/calls",
		Params:      []Param{dataParam("Call fields (personId, phone, outcome, duration, note)")},
	},
	{
		Name:        "update_call",
		Description: "Update a logged call",
		Method:      "PUT",
		Path:        "/calls/:id",
		Params:      []Param{idParam("Call ID"), dataParam("Call fields to update")},
	},

	// Text messages
	{
		Name:        "list_text_messages",
		Description: "List logged text messages",
		Method:      "GET",
		Path:        "/textMessages",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
		),
	},
	{
		Name:        "get_text_message",
		Description: "Get a single text message by ID",
		Method:      "GET",
		Path:        "/textMessages/:id",
		Params:      []Param{idParam("Text message ID")},
	},
	{
		Name:        "create_text_message",
		Description: "Log a text message against a person",
		Method:      "POST",
		Path:        "/textMessages",
		Params:      []Param{dataParam("Text message fields (personId, message, toNumber, fromNumber)")},
	},

	// Appointments
	{
		Name:        "list_appointments",
		Description: "List appointments",
		Method:      "GET",
		Path:        "/appointments",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
		),
	},
	{
		Name:        "get_appointment",
		Description: "Get a single appointment by ID",
		Method:      "GET",
		Path:        "/appointments/:id",
		Params:      []Param{idParam("Appointment ID")},
	},
	{
		Name:        "create_appointment",
		Description: "Create an appointment",
		Method:      "POST",
		Path:        "/appointments",
		Params:      []Param{dataParam("Appointment fields (title, start, end, typeId, invitees)")},
	},
	{
		Name:        "update_appointment",
		Description: "Update an existing appointment",
		Method:      "PUT",
		Path:        "/appointments/:id",
		Params:      []Param{idParam("Appointment ID"), dataParam("Appointment fields to update")},
	},
	{
		Name:        "delete_appointment",
		Description: "Delete an appointment",
		Method:      "DELETE",
		Path:        "/appointments/:id",
		Params:      []Param{idParam("Appointment ID")},
	},
	{
		Name:        "list_appointment_types",
		Description: "List appointment types",
		Method:      "GET",
		Path:        "/appointmentTypes",
		Params:      pageParams(),
	},
	{
		Name:        "get_appointment_type",
		Description: "Get a single appointment type by ID",
		Method:      "GET",
		Path:        "/appointmentTypes/:id",
		Params:      []Param{idParam("Appointment type ID")},
	},
	{
		Name:        "list_appointment_outcomes",
		Description: "List appointment outcomes",
		Method:      "GET",
		Path:        "/appointmentOutcomes",
		Params:      pageParams(),
	},
	{
		Name:        "get_appointment_outcome",
		Description: "Get a single appointment outcome by ID",
		Method:      "GET",
		Path:        "/appointmentOutcomes/:id",
		Params:      []Param{idParam("Appointment outcome ID")},
	},

	// Webhooks
	{
		Name:        "list_webhooks",
		Description: "List registered webhooks",
		Method:      "GET",
		Path:        "/webhooks",
		Params:      pageParams(),
	},
	{
		Name:        "get_webhook",
		Description: "Get a single webhook by ID",
		Method:      "GET",
		Path:        "/webhooks/:id",
		Params:      []Param{idParam("Webhook ID")},
	},
	{
		Name:        "create_webhook",
		Description: "Register a webhook",
		Method:      "POST",
		Path:        "/webhooks",
		Params:      []Param{dataParam("Webhook fields (event, url)")},
	},
	{
		Name:        "update_webhook",
		Description: "Update a registered webhook",
		Method:      "PUT",
		Path:        "/webhooks/:id",
		Params:      []Param{idParam("Webhook ID"), dataParam("Webhook fields to update")},
	},
	{
		Name:        "delete_webhook",
		Description: "Delete a webhook",
		Method:      "DELETE",
		Path:        "/webhooks/:id",
		Params:      []Param{idParam("Webhook ID")},
	},

	// Users and teams
	{
		Name:        "list_users",
		Description: "List account users (agents)",
		Method:      "GET",
		Path:        "/users",
		Params:      pageParams(),
	},
	{
		Name:        "get_user",
		Description: "Get a single user by ID",
		Method:      "GET",
		Path:        "/users/:id",
		Params:      []Param{idParam("User ID")},
	},
	{
		Name:        "get_current_user",
		Description: "Get the user that owns the API key",
		Method:      "GET",
		Path:        "/me",
		Params:      nil,
	},
	{
		Name:        "delete_user",
		Description: "Remove a user from the account",
		Method:      "DELETE",
		Path:        "/users/:id",
		Params:      []Param{idParam("User ID")},
	},
	{
		Name:        "list_teams",
		Description: "List teams",
		Method:      "GET",
		Path:        "/teams",
		Params:      pageParams(),
	},
	{
		Name:        "get_team",
		Description: "Get a single team by ID",
		Method:      "GET",
		Path:        "/teams/:id",
		Params:      []Param{idParam("Team ID")},
	},

	// Smart lists
	{
		Name:        "list_smart_lists",
		Description: "List smart lists",
		Method:      "GET",
		Path:        "/smartLists",
		Params:      pageParams(),
	},
	{
		Name:        "get_smart_list",
		Description: "Get a single smart list by ID",
		Method:      "GET",
		Path:        "/smartLists/:id",
		Params:      []Param{idParam("Smart list ID")},
	},

	// Action plans
	{
		Name:        "list_action_plans",
		Description: "List action plans",
		Method:      "GET",
		Path:        "/actionPlans",
		Params:      pageParams(),
	},
	{
		Name:        "list_action_plan_people",
		Description: "List people enrolled in action plans",
		Method:      "GET",
		Path:        "/actionPlansPeople",
		Params: append(pageParams(),
			Param{Name: "personId", Type: "number", Description: "Filter by person ID", In: "query"},
			Param{Name: "actionPlanId", Type: "number", Description: "Filter by action plan ID", In: "query"},
		),
	},
	{
		Name:        "add_person_to_action_plan",
		Description: "Enroll a person in an action plan",
		Method:      "POST",
		Path:        "/actionPlansPeople",
		Params:      []Param{dataParam("Enrollment fields (personId, actionPlanId)")},
	},
	{
		Name:        "update_action_plan_person",
		Description: "Update an action plan enrollment (e.g. pause or resume)",
		Method:      "PUT",
		Path:        "/actionPlansPeople/:id",
		Params:      []Param{idParam("Enrollment ID"), dataParam("Enrollment fields to update (status)")},
	},

	// Email templates
	{
		Name:        "list_email_templates",
		Description: "List email templates",
		Method:      "GET",
		Path:        "/templates",
		Params:      pageParams(),
	},
	{
		Name:        "get_email_template",
		Description: "Get a single email template by ID",
		Method:      "GET",
		Path:        "/templates/:id",
		Params:      []Param{idParam("Template ID")},
	},
	{
		Name:        "create_email_template",
		Description: "Create an email template",
		Method:      "POST",
		Path:        "/templates",
		Params:      []Param{dataParam("Template fields (name, subject, body)")},
	},
	{
		Name:        "update_email_template",
		Description: "Update an email template",
		Method:      "PUT",
		Path:        "/templates/:id",
		Params:      []Param{idParam("Template ID"), dataParam("Template fields to update")},
	},
	{
		Name:        "delete_email_template",
		Description: "Delete an email template",
		Method:      "DELETE",
		Path:        "/templates/:id",
		Params:      []Param{idParam("Template ID")},
	},

	// Text message templates
	{
		Name:        "list_text_message_templates",
		Description: "List text message templates",
		Method:      "GET",
		Path:        "/textMessageTemplates",
		Params:      pageParams(),
	},
	{
		Name:        "get_text_message_template",
		Description: "Get a single text message template by ID",
		Method:      "GET",
		Path:        "/textMessageTemplates/:id",
		Params:      []Param{idParam("Template ID")},
	},
	{
		Name:        "create_text_message_template",
		Description: "Create a text message template",
		Method:      "POST",
		Path:        "/textMessageTemplates",
		Params:      []Param{dataParam("Template fields (name, message)")},
	},
	{
		Name:        "update_text_message_template",
		Description: "Update a text message template",
		Method:      "PUT",
		Path:        "/textMessageTemplates/:id",
		Params:      []Param{idParam("Template ID"), dataParam("Template fields to update")},
	},
	{
		Name:        "delete_text_message_template",
		Description: "Delete a text message template",
		Method:      "DELETE",
		Path:        "/textMessageTemplates/:id",
		Params:      []Param{idParam("Template ID")},
	},

	// Groups
	{
		Name:        "list_groups",
		Description: "List agent groups used for lead distribution",
		Method:      "GET",
		Path:        "/groups",
		Params:      pageParams(),
	},
	{
		Name:        "get_group",
		Description: "Get a single group by ID",
		Method:      "GET",
		Path:        "/groups/:id",
		Params:      []Param{idParam("Group ID")},
	},
	{
		Name:        "create_group",
		Description: "Create a group",
		Method:      "POST",
		Path:        "/groups",
		Params:      []Param{dataParam("Group fields (name, userIds, distribution)")},
	},
	{
		Name:        "update_group",
		Description: "Update an existing group",
		Method:      "PUT",
		Path:        "/groups/:id",
		Params:      []Param{idParam("Group ID"), dataParam("Group fields to update")},
	},
	{
		Name:        "delete_group",
		Description: "Delete a group",
		Method:      "DELETE",
		Path:        "/groups/:id",
		Params:      []Param{idParam("Group ID")},
	},

	// Ponds
	{
		Name:        "list_ponds",
		Description: "List ponds (shared lead pools)",
		Method:      "GET",
		Path:        "/ponds",
		Params:      pageParams(),
	},
	{
		Name:        "get_pond",
		Description: "Get a single pond by ID",
		Method:      "GET",
		Path:        "/ponds/:id",
		Params:      []Param{idParam("Pond ID")},
	},
	{
		Name:        "create_pond",
		Description: "Create a pond",
		Method:      "POST",
		Path:        "/ponds",
		Params:      []Param{dataParam("Pond fields (name, userIds)")},
	},
	{
		Name:        "update_pond",
		Description: "Update an existing pond",
		Method:      "PUT",
		Path:        "/ponds/:id",
		Params:      []Param{idParam("Pond ID"), dataParam("Pond fields to update")},
	},
	{
		Name:        "delete_pond",
		Description: "Delete a pond",
		Method:      "DELETE",
		Path:        "/ponds/:id",
		Params:      []Param{idParam("Pond ID")},
	},

	// Custom fields
	{
		Name:        "list_custom_fields",
		Description: "List custom fields defined on people",
		Method:      "GET",
		Path:        "/customFields",
		Params:      pageParams(),
	},
	{
		Name:        "get_custom_field",
		Description: "Get a single custom field by ID",
		Method:      "GET",
		Path:        "/customFields/:id",
		Params:      []Param{idParam("Custom field ID")},
	},
	{
		Name:        "create_custom_field",
		Description: "Create a custom field",
		Method:      "POST",
		Path:        "/customFields",
		Params:      []Param{dataParam("Custom field definition (label, type)")},
	},
	{
		Name:        "update_custom_field",
		Description: "Update a custom field definition",
		Method:      "PUT",
		Path:        "/customFields/:id",
		Params:      []Param{idParam("Custom field ID"), dataParam("Custom field fields to update")},
	},
	{
		Name:        "delete_custom_field",
		Description: "Delete a custom field",
		Method:      "DELETE",
		Path:        "/customFields/:id",
		Params:      []Param{idParam("Custom field ID")},
	},

	// Misc
	{
		Name:        "get_threaded_reply",
		Description: "Get a threaded email reply by ID",
		Method:      "GET",
		Path:        "/threadedReplies/:id",
		Params:      []Param{idParam("Threaded reply ID")},
	},
	{
		Name:        "list_timeframes",
		Description: "List configured buyer/seller timeframes",
		Method:      "GET",
		Path:        "/timeframes",
		Params:      nil,
	},
	{
		Name:        "get_identity",
		Description: "Get account identity information for the API key",
		Method:      "GET",
		Path:        "/identity",
		Params:      nil,
	},
}
