// Package datatracker is a typed client for the IETF Datatracker registry
// of people, email addresses, groups, and documents.
//
// # Core Concepts
//
//  1. Fetcher: the transport seam. Anything that can return the raw body at
//     a relative path can back a Client; transport.Client is the production
//     implementation, and MemoFetcher decorates any Fetcher with in-process
//     memoization.
//
//  2. Entities: decoded records (Person, Email, Group, Document, ...) whose
//     fields mirror the remote schema. Every entity carries its own typed
//     URI, so records and identifiers round-trip.
//
//  3. Listings: filtered queries returning a lazy pager.Pager cursor.
//     Elements stream in remote order; nothing is materialized up front.
//
//  4. History: the recorded states of a person or email address, rebuilt as
//     validity-bounded snapshots with At, Current, and Validate defined over
//     them.
//
// # Usage Example
//
//	tc, err := transport.New(transport.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	dt, err := datatracker.New(datatracker.NewMemoFetcher(tc))
//	if err != nil {
//	    return err
//	}
//
//	person, err := dt.PersonWithName(ctx, "Jane Doe")
//	if err != nil {
//	    return err
//	}
//	emails, err := dt.EmailsForPerson(person.URI())
//	if err != nil {
//	    return err
//	}
//	for email, err := range emails.All(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(email.Address)
//	}
//
// # Failure Handling
//
// Every failure carries a dterror category. Callers branch on the category,
// not on message text: absence is dterror.CategoryNotFound, transport
// trouble is the retryable dterror.CategoryFetch, schema drift is
// dterror.CategoryDecode, and corrupt history is dterror.CategoryInvariant.
package datatracker
