package domain

// Step identifies the continuation handler for the user's next input.
// An empty step means the session is idle and awaiting a menu selection.
type Step string

const (
	StepIdle Step = ""

	// Registration.
	StepRegisterName Step = "register_name"

	// Checkout, in forced linear order.
	StepCheckoutPhone    Step = "get_phone"
	StepCheckoutLocation Step = "get_location"
	StepCheckoutDelivery Step = "delivery_option"
	StepCheckoutPayment  Step = "awaiting_payment"

	// Product authoring, one field per turn.
	StepProductNameUz Step = "add_product_name"
	StepProductDescUz Step = "add_product_desc"
	StepProductNameRu Step = "add_product_name_ru"
	StepProductDescRu Step = "add_product_desc_ru"
	StepProductNameEn Step = "add_product_name_en"
	StepProductDescEn Step = "add_product_desc_en"
	StepProductPrice  Step = "add_product_price"
	StepProductCat    Step = "add_product_category"

	// Category authoring.
	StepCategoryNameUz Step = "add_category_name"
	StepCategoryNameRu Step = "add_category_name_ru"
	StepCategoryNameEn Step = "add_category_name_en"

	// Single-turn flows.
	StepBroadcast Step = "broadcast"
	StepSupport   Step = "support"
)

// ProductDraft accumulates product fields during the authoring flow.
// ID is non-zero when editing an existing product.
type ProductDraft struct {
	ID            int    `json:"id"`
	NameUz        string `json:"name_uz"`
	NameRu        string `json:"name_ru"`
	NameEn        string `json:"name_en"`
	DescriptionUz string `json:"description_uz"`
	DescriptionRu string `json:"description_ru"`
	DescriptionEn string `json:"description_en"`
	Price         int    `json:"price"`
}

// CategoryDraft accumulates category names during the authoring flow.
type CategoryDraft struct {
	ID     int    `json:"id"`
	NameUz string `json:"name_uz"`
	NameRu string `json:"name_ru"`
	NameEn string `json:"name_en"`
}

// Session is per-user ephemeral conversation state. Only one flow may be
// active at a time; entering a new flow overwrites Step.
type Session struct {
	Step         Step           `json:"step"`
	Language     string         `json:"language"`
	Page         int            `json:"page"`
	CategoryID   int            `json:"category_id"`
	Phone        string         `json:"phone,omitempty"`
	Address      string         `json:"address,omitempty"`
	DeliveryType string         `json:"delivery_type,omitempty"`
	Draft        *ProductDraft  `json:"draft,omitempty"`
	DraftCat     *CategoryDraft `json:"draft_cat,omitempty"`
}

// NewSession returns an idle session with the default language.
func NewSession() *Session {
	return &Session{Language: DefaultLanguage}
}

// Reset clears every flow field but keeps the resolved language.
func (s *Session) Reset() {
	lang := s.Language
	*s = Session{Language: lang}
}
