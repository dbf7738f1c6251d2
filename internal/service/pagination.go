package service

// FeedPageSize is the number of items in one page of posts or stories.
const FeedPageSize = 10

// MaxPage bounds page numbers so the offset cannot overflow.
const MaxPage = 100000

// pageOffset normalises a 1-based page number into [1, MaxPage] and returns it
// with the matching offset.
func pageOffset(page int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	return page, (page - 1) * FeedPageSize
}
