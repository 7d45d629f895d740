package library

import "fmt"

func DefaultSeed() []NewProductRequest {
	return []NewProductRequest{
		{Kind: "Book", Title: "Harry Potter", Author: "J.K. Rowling", Genre: "Fantasy", Price: 9.99, Description: "Description 1"},
		{Kind: "Book", Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction", Price: 10.99, Description: "Description 2"},
		{Kind: "Book", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction", Price: 15.99},
		{Kind: "Journal", Title: "Five-Minute Journal", Author: "Intelligent Change", Genre: "Life", Price: 3.99},
		{Kind: "Book", Title: "1984", Author: "George Orwell", Genre: "Fiction", Price: 12.99},
		{Kind: "Book", Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Price: 15.99, Description: "Description 3"},
		{Kind: "Journal", Title: "Daily Practices", Author: "Barrie Davenport", Genre: "Life", Price: 12.99, Description: "Description 4"},
	}
}

// Seed adds every request in order and stops at the first rejected one.
func Seed(l *Library, reqs []NewProductRequest) error {
	for i, req := range reqs {
		if _, err := l.AddProduct(req); err != nil {
			return fmt.Errorf("seed item %d (%q): %w", i, req.Title, err)
		}
	}
	return nil
}
