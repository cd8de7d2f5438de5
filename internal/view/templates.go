package view

const baseHTML = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · MyStore</title>
<script src="https://cdn.tailwindcss.com"></script>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
</head>
<body class="bg-gray-100 min-h-screen flex flex-col">{{end}}

{{define "header"}}
<header class="bg-white shadow-md p-4 flex justify-between items-center">
  <a href="/" class="text-xl font-bold text-indigo-600">MyStore</a>
  <nav class="flex items-center gap-4">
    <a href="/" class="text-gray-700 hover:text-indigo-600">Products</a>
    {{if .Session.Valid}}
      <a href="/cart" class="text-gray-700 hover:text-indigo-600">Cart {{template "fragment/cart-badge" .CartCount}}</a>
      <a href="/orders" class="text-gray-700 hover:text-indigo-600">Orders</a>
      <span class="text-gray-600">Hello, <strong>{{.Session.User.Name}}</strong></span>
      <form method="post" action="/logout">
        <button type="submit" class="bg-red-500 hover:bg-red-600 text-white px-3 py-1 rounded">Sign out</button>
      </form>
    {{else}}
      <a href="/login" class="text-gray-700 hover:text-indigo-600">Login</a>
      <a href="/register" class="text-gray-700 hover:text-indigo-600">Register</a>
    {{end}}
  </nav>
</header>
{{end}}

{{define "footer"}}
<footer class="bg-gray-100 mt-10 border-t border-gray-300">
  <div class="max-w-7xl mx-auto px-4 py-4">
    <a href="#" class="block w-full py-2 text-sm text-center bg-gray-200 hover:bg-gray-300 rounded-md">Back to top</a>
    <p class="py-4 text-sm text-gray-500 text-center">MyStore, your everyday storefront</p>
  </div>
</footer>
<div id="toast" class="fixed bottom-4 right-4"></div>
</body>
</html>
{{end}}
`

const catalogHTML = `
{{define "page/catalog"}}{{template "head" .}}
{{template "header" .}}
<main class="p-6 flex-1">
  <h1 class="text-2xl font-bold mb-6">Products</h1>
  {{if .Err}}<div class="mb-4 p-3 bg-red-50 border border-red-200 rounded text-red-600 text-sm">{{.Err}}</div>{{end}}
  <div class="relative max-w-2xl mx-auto mb-6">
    <input type="text" placeholder="Search products..."
      class="w-full p-3 rounded-lg border border-gray-300 focus:outline-none focus:ring-2 focus:ring-blue-500"
      value="{{.Query}}" data-bind-q data-on-input="@get('/search')">
  </div>
  {{template "fragment/product-grid" .}}
</main>
{{template "footer" .}}{{end}}
`

const authHTML = `
{{define "page/login"}}{{template "head" .}}
{{template "header" .}}
<main class="flex-1 flex justify-center items-center p-6">
  <div class="w-full max-w-md">
    <form method="post" action="/login" class="bg-white shadow-xl rounded-lg p-8 border border-gray-200">
      <h2 class="text-3xl font-medium mb-6 text-gray-900">Sign in</h2>
      {{if .Err}}<div class="mb-4 p-3 bg-red-50 border border-red-200 rounded text-red-600 text-sm">{{.Err}}</div>{{end}}
      <div class="mb-4">
        <label class="block text-sm font-medium text-gray-700 mb-1">E-mail</label>
        <input type="email" name="email" value="{{.Email}}" required
          class="w-full px-4 py-2 border border-gray-300 rounded-md shadow-sm">
      </div>
      <div class="mb-6">
        <label class="block text-sm font-medium text-gray-700 mb-1">Password</label>
        <input type="password" name="password" required
          class="w-full px-4 py-2 border border-gray-300 rounded-md shadow-sm">
      </div>
      <button type="submit" class="w-full bg-orange-400 hover:bg-orange-500 text-white py-3 rounded-md font-medium shadow-sm">Continue</button>
    </form>
    <div class="mt-6 text-center">
      <span class="text-sm text-gray-500">New to MyStore?</span>
      <a href="/register" class="block mt-4 w-full bg-gray-100 hover:bg-gray-200 text-gray-800 py-2 rounded-md font-medium shadow-sm border border-gray-300">Create your MyStore account</a>
    </div>
  </div>
</main>
{{template "footer" .}}{{end}}

{{define "page/register"}}{{template "head" .}}
{{template "header" .}}
<main class="flex-1 flex justify-center items-center p-6">
  <div class="w-full max-w-md">
    <form method="post" action="/register" class="bg-white shadow-xl rounded-lg p-8 border border-gray-200">
      <h2 class="text-3xl font-medium mb-6 text-gray-900">Create account</h2>
      {{if .Err}}<div class="mb-4 p-3 bg-red-50 border border-red-200 rounded text-red-600 text-sm">{{.Err}}</div>{{end}}
      <div class="mb-4">
        <label class="block text-sm font-medium text-gray-700 mb-1">Your name</label>
        <input type="text" name="name" value="{{.Name}}" required
          class="w-full px-4 py-2 border border-gray-300 rounded-md shadow-sm">
      </div>
      <div class="mb-4">
        <label class="block text-sm font-medium text-gray-700 mb-1">E-mail</label>
        <input type="email" name="email" value="{{.Email}}" required
          class="w-full px-4 py-2 border border-gray-300 rounded-md shadow-sm">
      </div>
      <div class="mb-6">
        <label class="block text-sm font-medium text-gray-700 mb-1">Password</label>
        <input type="password" name="password" required minlength="6" placeholder="Minimum 6 characters"
          class="w-full px-4 py-2 border border-gray-300 rounded-md shadow-sm">
      </div>
      <button type="submit" class="w-full bg-orange-400 hover:bg-orange-500 text-white py-3 rounded-md font-medium shadow-sm">Create your MyStore account</button>
    </form>
    <div class="mt-6 text-center">
      <span class="text-sm text-gray-500">Already have an account?</span>
      <a href="/login" class="block mt-4 w-full bg-gray-100 hover:bg-gray-200 text-gray-800 py-2 rounded-md font-medium shadow-sm border border-gray-300">Sign in</a>
    </div>
  </div>
</main>
{{template "footer" .}}{{end}}
`

const cartHTML = `
{{define "page/cart"}}{{template "head" .}}
{{template "header" .}}
<main class="p-6 max-w-3xl mx-auto w-full flex-1">
  <h1 class="text-2xl font-bold mb-4">Your cart</h1>
  {{template "fragment/cart-root" .}}
</main>
{{template "footer" .}}{{end}}
`

const ordersHTML = `
{{define "page/orders"}}{{template "head" .}}
{{template "header" .}}
<main class="py-8 flex-1">
  <div class="max-w-4xl mx-auto px-4">
    <h1 class="text-2xl font-bold text-gray-800 mb-6">Your orders</h1>
    <div id="orders-list" data-on-load="@get('/orders/list')">
      <div class="bg-white rounded-lg shadow-md p-8 text-center">
        <div class="animate-pulse flex flex-col items-center">
          <div class="h-6 w-48 bg-gray-200 rounded mb-4"></div>
          <div class="h-4 w-64 bg-gray-200 rounded"></div>
        </div>
        <p class="mt-4 text-gray-500">Loading your orders…</p>
      </div>
    </div>
  </div>
</main>
{{template "footer" .}}{{end}}
`

const fragmentsHTML = `
{{define "fragment/product-grid"}}
<div id="product-grid" class="grid grid-cols-1 sm:grid-cols-2 md:grid-cols-3 gap-6">
  {{range .Products}}
  <div class="bg-white shadow-md rounded p-4 flex flex-col">
    {{if .Image}}<img src="{{.Image}}" alt="{{.Name}}" class="object-contain h-32 mb-2">{{end}}
    <h2 class="text-lg font-semibold">{{.Name}}</h2>
    <p class="text-gray-600 text-sm mb-2">{{.Description}}</p>
    <p class="text-green-600 font-bold mb-4">{{money .Price}}</p>
    {{if $.Session.Valid}}
    <button data-on-click="@post('/cart/items?id={{.ID}}')"
      class="bg-blue-600 hover:bg-blue-700 text-white py-2 px-4 rounded mt-auto">Add to cart</button>
    {{else}}
    <a href="/login" class="text-center bg-gray-100 hover:bg-gray-200 text-gray-700 py-2 px-4 rounded mt-auto border border-gray-300">Sign in to buy</a>
    {{end}}
  </div>
  {{else}}
  <p class="text-gray-500 col-span-full">No products found.</p>
  {{end}}
</div>
{{end}}

{{define "fragment/cart-badge"}}<span id="cart-badge" class="inline-block bg-indigo-600 text-white text-xs rounded-full px-2">{{if gt . 0}}{{.}}{{end}}</span>{{end}}

{{define "fragment/cart-root"}}
<div id="cart-root">
  {{if .Err}}<div class="mb-4 p-3 bg-red-50 border border-red-200 rounded text-red-600 text-sm">{{.Err}}</div>{{end}}
  {{if .Cart.IsEmpty}}
  <p class="text-gray-600">Your cart is empty.</p>
  {{else}}
  <ul class="space-y-4">
    {{range .Cart.Items}}
    <li class="flex justify-between items-center border bg-white p-4 rounded shadow">
      <div>
        <p class="font-semibold">{{.Name}}</p>
        <p class="text-sm text-gray-600">Quantity: {{.Quantity}}</p>
        <p class="text-green-600 font-bold">{{money .Subtotal}}</p>
      </div>
      <button data-on-click="@delete('/cart/items/{{.ProductID}}')"
        class="text-red-600 hover:underline">Remove</button>
    </li>
    {{end}}
  </ul>
  <div class="mt-6 flex justify-between items-center">
    <p class="text-lg font-semibold">Total: {{money .Cart.Total}}</p>
    <div class="flex gap-3">
      <button data-on-click="@post('/cart/clear')"
        class="text-gray-600 hover:underline">Clear cart</button>
      <form method="post" action="/checkout">
        <button type="submit" class="bg-blue-600 text-white px-4 py-2 rounded hover:bg-blue-700">Checkout</button>
      </form>
    </div>
  </div>
  {{end}}
</div>
{{end}}

{{define "fragment/orders-list"}}
<div id="orders-list">
  {{if .Err}}
  <div class="bg-white rounded-lg shadow-md p-8 text-center">
    <p class="text-red-600">{{.Err}}</p>
  </div>
  {{else if not .Orders}}
  <div class="bg-white rounded-lg shadow-md p-8 text-center">
    <h2 class="text-2xl font-bold text-gray-800 mb-2">You have no orders yet</h2>
    <p class="text-gray-600 mb-6">When you place an order, it will show up here</p>
    <a href="/" class="inline-block bg-yellow-400 hover:bg-yellow-500 text-gray-900 font-medium py-2 px-6 rounded-md shadow-sm">Continue shopping</a>
  </div>
  {{else}}
  <div class="space-y-4">
    {{range .Orders}}
    <div class="bg-white rounded-lg shadow-md overflow-hidden">
      <div class="border-b p-4 bg-gray-50">
        <div class="flex items-center justify-between">
          <div>
            <h3 class="font-medium text-gray-800">Order #{{.Reference}}</h3>
            <p class="text-sm text-gray-500">Placed on {{datefmt .CreatedAt}}</p>
          </div>
          <div class="flex items-center">
            <span class="text-sm font-medium text-gray-700 mr-2">Total:</span>
            <span class="text-lg font-bold">{{money .Total}}</span>
          </div>
        </div>
        {{if .Status}}
        <div class="mt-2">
          <span class="px-2 py-1 text-xs rounded-full {{if eq .Status "Delivered"}}bg-green-100 text-green-800{{else if eq .Status "Cancelled"}}bg-red-100 text-red-800{{else}}bg-yellow-100 text-yellow-800{{end}}">{{.Status}}</span>
        </div>
        {{end}}
      </div>
      <div class="p-4">
        <h4 class="font-medium text-gray-700 mb-3">Order items</h4>
        <ul class="divide-y">
          {{range .Items}}
          <li class="py-3 flex justify-between">
            <div>
              <h5 class="font-medium text-gray-800">{{.Product.Name}}</h5>
              <p class="text-sm text-gray-500">Quantity: {{.Quantity}}</p>
            </div>
            <p class="font-medium">{{money .Subtotal}}</p>
          </li>
          {{end}}
        </ul>
      </div>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "fragment/toast"}}
<div id="toast" class="fixed bottom-4 right-4">
  {{if .Message}}
  <div class="px-4 py-3 rounded shadow-lg text-white {{if .IsError}}bg-red-600{{else}}bg-gray-900{{end}}">{{.Message}}</div>
  {{end}}
</div>
{{end}}
`
