package bracket

type Team struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	CaptainID   *int64 `db:"captain_id" json:"captain"`

	Members []int64 `db:"-" json:"members"`
}
