package graph

// Schema is the full GraphQL schema served at /graphql.
const Schema = `
schema {
	query: Query
	mutation: Mutation
}

type Query {
	getUserById(id: ID!): User
	allUsers(page: Int, limit: Int): AllUserOutput!
	me: User!
	getUserByEmail(email: String!): User
	getAllAdmins: [User!]!

	getEventById(id: ID!): Event!
	allEvents(page: Int, limit: Int, search: String, category: String): AllEventOutput!
	allEventsCategory: AllEventsCategoryOutput!
	getAllEventsByUserId(userId: ID!): [Event!]!

	getEnrolledEventById(id: ID!): EnrolledEvent!
	allEnrolledEvents: [EnrolledEvent!]!
	checkEnrolledEvent(eventId: ID!, userId: ID!): Boolean!
	getEnrolledEventsByCreaterId(authorId: ID!): [EnrolledEvent!]!

	getAllMessages: [Message!]!
	getAllMessagesByUserId(userId: ID!): [Message!]!
}

type Mutation {
	userRegister(registerData: UserRegisterInput!): User!
	userLogin(loginData: UserLoginInput!): Token!
	updateUserById(profileUpdate: ProfileUpdateInput!): User!
	deleteUserById(id: ID!): User!

	createEvent(eventData: EventCreateInput!): Event!
	updateEventById(updateData: EventUpdateInput!): Event!
	deleteEventById(id: ID!): Event!

	enrollEvent(eventId: ID!, userId: ID!): EnrolledEvent!
	unenrollEvent(eventId: ID!, userId: ID!): EnrolledEvent!

	createMessage(messageData: MessageCreateInput!): Message!
	updateMessageById(updateData: MessageUpdateInput!): Message!
	deleteMessageById(id: ID!): Message!

	createSeedUsers: Boolean!
	createSeedEvents: Boolean!
	createSeedEnrolledEvents: Boolean!
}

enum Role {
	ADMIN
	USER
}

type User {
	id: ID!
	name: String!
	email: String!
	password: String
	role: Role!
	bio: String
	events: [Event!]!
	enrolledEvents: [EnrolledEvent!]!
	createdAt: String!
	updatedAt: String!
}

type Token {
	token: String!
}

type Paginations {
	totalItems: Int!
	totalPages: Int!
	currentPage: Int!
	perPage: Int!
	nextPage: Int
	previousPage: Int
}

type AllUserOutput {
	data: [User!]!
	pageInfo: Paginations!
}

type Event {
	id: ID!
	title: String!
	date: String!
	time: String!
	location: String!
	category: String!
	description: String!
	image: String!
	price: String!
	capacity: Int!
	organizer: User
	authorId: ID!
	additionalInfo: [String!]!
	status: String
	totalEnrolled: Int!
	createdAt: String!
	updatedAt: String!
}

type AllEventOutput {
	data: [Event!]!
	pageInfo: Paginations!
}

type AllEventsCategoryOutput {
	data: [String!]!
}

type EnrolledEvent {
	id: ID!
	event: Event!
	eventId: ID!
	user: User!
	userId: ID!
	createdAt: String!
	updatedAt: String!
}

type Message {
	id: ID!
	message: String!
	sender: User
	senderId: ID!
	createdAt: String!
	updatedAt: String!
}

input UserRegisterInput {
	name: String!
	email: String!
	password: String!
	role: String!
	bio: String
}

input UserLoginInput {
	email: String!
	password: String!
	isAdmin: Boolean!
}

input ProfileUpdateInput {
	id: ID!
	name: String
	email: String
	password: String
	bio: String
}

input EventCreateInput {
	title: String!
	date: String!
	time: String!
	location: String!
	category: String!
	description: String!
	image: String!
	price: String!
	capacity: Int!
	authorId: ID!
	additionalInfo: [String!]
	status: String
}

input EventUpdateInput {
	id: ID!
	title: String
	date: String
	time: String
	location: String
	category: String
	description: String
	image: String
	price: String
	capacity: Int
	additionalInfo: [String!]
	status: String
}

input MessageCreateInput {
	message: String!
	senderId: ID!
}

input MessageUpdateInput {
	id: ID!
	message: String
}
`
