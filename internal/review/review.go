package review

// Review is a customer product review, managed from the admin back-office.
type Review struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
