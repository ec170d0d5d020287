// Package models defines the domain records exchanged with the rental catalog backend.
//
// The package contains two categories of types:
//
// 1. Catalog records decoded from backend responses:
//   - [Film] : Film metadata including category and rating
//   - [Actor] : Actor metadata with aggregate rental counts
//   - [Customer] : Customer account records
//   - [Rental] : A single rental with its rental and return dates
//
// 2. Request payloads sent to the backend:
//   - [CustomerInfo] : Customer fields submitted when renting a film
//   - [CustomerForm] : Customer fields submitted when creating or updating an account
//
// Field tags match the backend wire format (snake_case ids such as film_id and
// rental_date). Records are value types; identity for list reconciliation is the
// integer id alone, never field content.
package models
